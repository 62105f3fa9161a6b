package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Test worker pool with simple tasks",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Test worker pool with error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers, time.Second)
			defer wp.Close()

			var mu sync.Mutex
			var taskExecutionCount int
			var errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func(ctx context.Context) error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(50 * time.Millisecond)
						mu.Lock()
						taskExecutionCount++
						mu.Unlock()
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err, "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, taskExecutionCount, "number of executed tasks does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestWorkerPoolTaskDeadline(t *testing.T) {
	wp := NewWorkerPool(1, 20*time.Millisecond)
	defer wp.Close()

	done := make(chan error, 1)
	require.NoError(t, wp.AddTask(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return nil
	}))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("task context was never canceled")
	}
}

func TestWorkerPoolCloseDrainsQueue(t *testing.T) {
	wp := NewWorkerPool(1, time.Second)

	var executed atomic.Int32
	for i := 0; i < 3; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func(ctx context.Context) error {
			executed.Add(1)
			return nil
		}))
	}
	wp.Close()
	wp.Close()

	assert.Equal(t, int32(3), executed.Load())
	assert.ErrorIs(t, wp.AddTask(context.Background(), func(ctx context.Context) error { return nil }), ErrPoolClosed)
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1, time.Second)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	// One task occupies the worker, four fill the buffer.
	for i := 0; i < 5; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func(ctx context.Context) error {
			<-block
			return nil
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
