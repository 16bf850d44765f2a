package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/payment"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/sentry"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentGateway_SelectsProvider(t *testing.T) {
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	svc := sentry.NewSentryService(cfg, log)

	gw, err := NewPaymentGateway(cfg, svc, log)
	require.NoError(t, err)
	assert.Equal(t, LocalProviderName, gw.Provider())

	cfg.Stripe.SecretKey = "sk_test_123"
	gw, err = NewPaymentGateway(cfg, svc, log)
	require.NoError(t, err)
	assert.Equal(t, "stripe", gw.Provider())
}

func TestLocalGateway_EchoesAmount(t *testing.T) {
	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)
	gw := NewLocalGateway(log)

	intent, err := gw.CreatePaymentIntent(context.Background(), &payment.IntentRequest{
		OrderID:  "ord_1",
		Amount:   1190,
		Currency: types.CurrencyEUR,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.ID, "pi_local_"))
	assert.Equal(t, int64(1190), intent.Amount)
	assert.Equal(t, types.CurrencyEUR, intent.Currency)

	_, err = gw.CreatePaymentIntent(context.Background(), &payment.IntentRequest{Amount: -5, Currency: types.CurrencyEUR})
	assert.True(t, ierr.IsInvalidAmount(err))
}
