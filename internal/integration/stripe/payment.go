package stripe

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/flexprice/storefront/internal/domain/payment"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/sentry"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stripe/stripe-go/v82"
)

// Gateway creates Stripe PaymentIntents. It never computes amounts itself.
type Gateway struct {
	create createIntentFunc
	sentry *sentry.Service
	logger *logger.Logger
}

var _ payment.Gateway = (*Gateway)(nil)

// NewGateway creates a Stripe backed payment gateway
func NewGateway(client *Client, sentry *sentry.Service, logger *logger.Logger) *Gateway {
	return &Gateway{
		create: client.createPaymentIntent(),
		sentry: sentry,
		logger: logger,
	}
}

func (g *Gateway) Provider() string {
	return ProviderName
}

// CreatePaymentIntent creates a PaymentIntent for the exact amount and currency of the request
func (g *Gateway) CreatePaymentIntent(ctx context.Context, req *payment.IntentRequest) (*payment.Intent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	metadata := req.Metadata.Merge(types.Metadata{
		"order_id": req.OrderID,
		"source":   "storefront",
	})

	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency.Lower()),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: metadata,
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	span, ctx := g.sentry.StartPaymentSpan(ctx, "create_payment_intent", map[string]interface{}{
		"order_id": req.OrderID,
		"currency": req.Currency,
	})
	if span != nil {
		defer span.Finish()
	}

	pi, err := g.create(ctx, params)
	if err != nil {
		g.logger.Errorw("failed to create stripe payment intent",
			"error", err,
			"order_id", req.OrderID,
			"amount", req.Amount,
			"currency", req.Currency,
		)

		details := map[string]any{
			"order_id": req.OrderID,
		}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			details["stripe_error_code"] = stripeErr.Code
			if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 {
				return nil, ierr.WithError(err).
					WithHint("Payment provider rejected the payment request").
					WithReportableDetails(details).
					Mark(ierr.ErrInvalidOperation)
			}
		}

		return nil, ierr.WithError(err).
			WithHint("Unable to reach the payment provider").
			WithReportableDetails(details).
			Mark(ierr.ErrHTTPClient)
	}

	g.logger.Infow("created stripe payment intent",
		"payment_intent_id", pi.ID,
		"order_id", req.OrderID,
		"amount", pi.Amount,
		"currency", pi.Currency,
	)

	return &payment.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     req.Currency,
		Provider:     ProviderName,
		CreatedAt:    time.Unix(pi.Created, 0).UTC(),
	}, nil
}
