package integration

import (
	"context"
	"time"

	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/types"
)

const LocalProviderName = "local"

// LocalGateway fakes a payment provider for offline development.
// It validates requests exactly like the real gateway and echoes the amount back.
type LocalGateway struct {
	logger *logger.Logger
}

var _ payment.Gateway = (*LocalGateway)(nil)

func NewLocalGateway(logger *logger.Logger) *LocalGateway {
	return &LocalGateway{logger: logger}
}

func (g *LocalGateway) Provider() string {
	return LocalProviderName
}

func (g *LocalGateway) CreatePaymentIntent(ctx context.Context, req *payment.IntentRequest) (*payment.Intent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT_INTENT)
	g.logger.Infow("created local payment intent",
		"payment_intent_id", id,
		"order_id", req.OrderID,
		"amount", req.Amount,
		"currency", req.Currency,
	)

	return &payment.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Provider:     LocalProviderName,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
