package testutil

import (
	"context"
	"time"

	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/stretchr/testify/mock"
)

const MockProviderName = "mock"

// MockGateway is a testify mock of payment.Gateway
type MockGateway struct {
	mock.Mock
}

var _ payment.Gateway = (*MockGateway)(nil)

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, req *payment.IntentRequest) (*payment.Intent, error) {
	args := m.Called(ctx, req)
	switch v := args.Get(0).(type) {
	case func(context.Context, *payment.IntentRequest) *payment.Intent:
		return v(ctx, req), args.Error(1)
	case *payment.Intent:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGateway) Provider() string {
	return MockProviderName
}

// EchoIntent builds the intent a provider would return for the request
func EchoIntent(id string, req *payment.IntentRequest) *payment.Intent {
	return &payment.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Provider:     MockProviderName,
		CreatedAt:    time.Now().UTC(),
	}
}
