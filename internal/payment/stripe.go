package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

var ErrNotConfigured = errors.New("payment provider is not configured")

type StripeClient struct {
	intents *paymentintent.Client
}

func NewStripeClient(apiKey string) *StripeClient {
	return NewStripeClientWithBackend(apiKey, stripe.GetBackend(stripe.APIBackend))
}

func NewStripeClientWithBackend(apiKey string, backend stripe.Backend) *StripeClient {
	return &StripeClient{
		intents: &paymentintent.Client{B: backend, Key: apiKey},
	}
}

// CreatePaymentIntent returns the client secret the browser uses to confirm
// the payment. amount is in minor units.
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if c.intents.Key == "" {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := c.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
