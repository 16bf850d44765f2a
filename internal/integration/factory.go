package integration

import (
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/flexprice/storefront/internal/integration/stripe"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/sentry"
)

// NewPaymentGateway returns the Stripe gateway when a secret key is configured,
// and the offline local gateway otherwise
func NewPaymentGateway(cfg *config.Configuration, sentry *sentry.Service, logger *logger.Logger) (payment.Gateway, error) {
	if cfg.Stripe.UseLocalGateway() {
		logger.Warnw("stripe secret key not configured, using local payment gateway")
		return NewLocalGateway(logger), nil
	}

	client, err := stripe.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return stripe.NewGateway(client, sentry, logger), nil
}
