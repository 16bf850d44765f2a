package stripe

import (
	"context"

	"github.com/flexprice/storefront/internal/config"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/stripe/stripe-go/v82"
)

const ProviderName = "stripe"

// createIntentFunc matches stripe.Client.V1PaymentIntents.Create
type createIntentFunc func(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)

// Client handles Stripe API client setup and configuration
type Client struct {
	client *stripe.Client
	logger *logger.Logger
}

// NewClient creates a new Stripe client from the configured secret key
func NewClient(cfg *config.Configuration, logger *logger.Logger) (*Client, error) {
	if cfg.Stripe.UseLocalGateway() {
		return nil, ierr.NewError("stripe secret key is not configured").
			WithHint("Stripe is not configured").
			Mark(ierr.ErrValidation)
	}

	logger.Infow("initializing stripe client",
		"has_publishable_key", cfg.Stripe.PublishableKey != "",
	)

	return &Client{
		client: stripe.NewClient(cfg.Stripe.SecretKey, nil),
		logger: logger,
	}, nil
}

func (c *Client) createPaymentIntent() createIntentFunc {
	return c.client.V1PaymentIntents.Create
}
