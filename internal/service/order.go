package service

import (
	"context"

	"github.com/flexprice/storefront/internal/api/dto"
)

type OrderService interface {
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	ListUserOrders(ctx context.Context, userID string) (*dto.ListOrdersResponse, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{ServiceParams: params}
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(o), nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string) (*dto.ListOrdersResponse, error) {
	// unknown users are a 404, not an empty list
	if _, err := getUser(ctx, s.ServiceParams, userID); err != nil {
		return nil, err
	}

	orders, err := s.OrderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewListOrdersResponse(orders)
	return &resp, nil
}
