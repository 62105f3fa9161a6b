// Package notify delivers HTML mail, either synchronously through a Sender or
// in the background through a Dispatcher.
package notify

import (
	"context"
	"errors"
)

var ErrNoRecipient = errors.New("mail recipient is required")

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
