package memory

import (
	"context"

	"github.com/flexprice/storefront/internal/domain/order"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
)

// OrderStore implements order.Repository. It only backs local development.
type OrderStore struct {
	*Store[*order.Order]
	logger *logger.Logger
}

var _ order.Repository = (*OrderStore)(nil)

func NewOrderStore(logger *logger.Logger) *OrderStore {
	return &OrderStore{
		Store:  NewStore[*order.Order]("order"),
		logger: logger,
	}
}

func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return ierr.NewError("order cannot be nil").
			WithHint("Order is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.Store.Create(ctx, o.ID, o); err != nil {
		return err
	}

	s.logger.Debugw("stored order",
		"order_id", o.ID,
		"number", o.Number,
		"total", o.Tax.TotalAmount,
		"currency", o.Currency,
	)
	return nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	return s.Store.Get(ctx, id)
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	return s.Store.List(ctx,
		func(_ context.Context, o *order.Order) bool {
			return o.UserID == userID
		},
		func(i, j *order.Order) bool {
			return i.CreatedAt.After(j.CreatedAt)
		},
	), nil
}
