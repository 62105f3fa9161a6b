package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestDispatcher_Notify(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(sender *MockSender, done chan struct{})
	}{
		{
			name: "Message is delivered in background",
			prepareMock: func(sender *MockSender, done chan struct{}) {
				sender.EXPECT().Send(gomock.Any(), Message{To: "amy@x.com", Subject: "Hi"}).
					DoAndReturn(func(ctx context.Context, _ Message) error {
						_, hasDeadline := ctx.Deadline()
						assert.True(t, hasDeadline)
						close(done)
						return nil
					})
			},
		},
		{
			name: "Delivery failure is swallowed",
			prepareMock: func(sender *MockSender, done chan struct{}) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, Message) error {
						close(done)
						return errors.New("smtp down")
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := NewMockSender(ctrl)
			done := make(chan struct{})
			tt.prepareMock(sender, done)

			d := NewDispatcher(sender, 1, time.Second)
			d.Notify(Message{To: "amy@x.com", Subject: "Hi"})

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("notification was not sent")
			}
			d.Close()
		})
	}
}

func TestDispatcher_NotifyAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := NewDispatcher(NewMockSender(ctrl), 1, time.Second)
	d.Close()

	assert.NotPanics(t, func() { d.Notify(Message{To: "amy@x.com"}) })
}
