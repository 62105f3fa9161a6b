package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrVerifierUnavailable = errors.New("identity verifier unavailable")
)

// Identity is what a verified bearer credential proves about the caller.
type Identity struct {
	Email   string
	Subject string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
