package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const enqueueTimeout = 100 * time.Millisecond

// Dispatcher sends notifications in the background. Delivery failures are
// logged and never reach the caller.
type Dispatcher struct {
	sender Sender
	pool   *WorkerPool
}

func NewDispatcher(sender Sender, workers int, sendTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		pool:   NewWorkerPool(workers, sendTimeout),
	}
}

func (d *Dispatcher) Notify(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	err := d.pool.AddTask(ctx, func(ctx context.Context) error {
		if err := d.sender.Send(ctx, msg); err != nil {
			zap.L().Warn("notification not delivered", zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		zap.L().Warn("notification dropped", zap.String("to", msg.To), zap.Error(err))
	}
}

func (d *Dispatcher) Close() {
	d.pool.Close()
}
