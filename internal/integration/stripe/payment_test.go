package stripe

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/payment"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/sentry"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func newTestGateway(t *testing.T, create createIntentFunc) *Gateway {
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	return &Gateway{
		create: create,
		sentry: sentry.NewSentryService(cfg, log),
		logger: log,
	}
}

func TestGateway_PassesAmountAndCurrencyVerbatim(t *testing.T) {
	var captured *stripe.PaymentIntentCreateParams
	gw := newTestGateway(t, func(_ context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
		captured = params
		return &stripe.PaymentIntent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
			Amount:       *params.Amount,
			Created:      1700000000,
		}, nil
	})

	intent, err := gw.CreatePaymentIntent(context.Background(), &payment.IntentRequest{
		OrderID:        "ord_1",
		Amount:         1190,
		Currency:       types.CurrencyEUR,
		IdempotencyKey: "payment_intent-abc",
		Metadata:       types.Metadata{"country": "DE"},
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, int64(1190), *captured.Amount)
	assert.Equal(t, "eur", *captured.Currency)
	assert.Equal(t, "payment_intent-abc", *captured.IdempotencyKey)
	assert.Equal(t, "DE", captured.Metadata["country"])
	assert.Equal(t, "ord_1", captured.Metadata["order_id"])
	assert.True(t, *captured.AutomaticPaymentMethods.Enabled)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, types.CurrencyEUR, intent.Currency)
	assert.Equal(t, ProviderName, intent.Provider)
}

func TestGateway_RejectsInvalidRequestsBeforeCallingStripe(t *testing.T) {
	called := false
	gw := newTestGateway(t, func(_ context.Context, _ *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
		called = true
		return nil, nil
	})

	_, err := gw.CreatePaymentIntent(context.Background(), &payment.IntentRequest{
		Amount:   0,
		Currency: types.CurrencyUSD,
	})
	assert.True(t, ierr.IsInvalidAmount(err))

	_, err = gw.CreatePaymentIntent(context.Background(), &payment.IntentRequest{
		Amount:   100,
		Currency: types.Currency("GBP"),
	})
	assert.True(t, ierr.IsValidation(err))
	assert.False(t, called)
}

func TestGateway_MapsProviderErrors(t *testing.T) {
	declined := newTestGateway(t, func(_ context.Context, _ *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
		return nil, &stripe.Error{HTTPStatusCode: http.StatusBadRequest, Code: stripe.ErrorCodeAmountTooSmall}
	})
	_, err := declined.CreatePaymentIntent(context.Background(), &payment.IntentRequest{Amount: 1, Currency: types.CurrencyUSD})
	assert.True(t, ierr.IsInvalidOperation(err))

	unreachable := newTestGateway(t, func(_ context.Context, _ *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("connection reset")
	})
	_, err = unreachable.CreatePaymentIntent(context.Background(), &payment.IntentRequest{Amount: 100, Currency: types.CurrencyUSD})
	assert.True(t, ierr.IsHTTPClient(err))
}

func TestNewClient_RequiresSecretKey(t *testing.T) {
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	_, err = NewClient(cfg, log)
	assert.True(t, ierr.IsValidation(err))
}
