package dto

import (
	"time"

	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/types"
	"github.com/samber/lo"
)

type OrderResponse struct {
	ID              string                  `json:"id"`
	Number          string                  `json:"number"`
	UserID          string                  `json:"user_id,omitempty"`
	Country         string                  `json:"country"`
	Currency        types.Currency          `json:"currency"`
	Lines           []*CheckoutLineResponse `json:"lines"`
	BaseAmount      int64                   `json:"base_amount"`
	TaxAmount       int64                   `json:"tax_amount"`
	TotalAmount     int64                   `json:"total_amount"`
	TaxRate         float64                 `json:"tax_rate"`
	TaxLabel        string                  `json:"tax_label"`
	PaymentIntentID string                  `json:"payment_intent_id"`
	Status          types.OrderStatus       `json:"status"`
	Metadata        types.Metadata          `json:"metadata,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

func NewOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		UserID:          o.UserID,
		Country:         o.Country,
		Currency:        o.Currency,
		Lines:           newCheckoutLines(o.LineItems),
		BaseAmount:      o.Tax.BaseAmount,
		TaxAmount:       o.Tax.TaxAmount,
		TotalAmount:     o.Tax.TotalAmount,
		TaxRate:         o.Tax.Rate.InexactFloat64(),
		TaxLabel:        o.Tax.Label,
		PaymentIntentID: o.PaymentIntentID,
		Status:          o.Status,
		Metadata:        o.Metadata,
		CreatedAt:       o.CreatedAt,
	}
}

type ListOrdersResponse = types.ListResponse[*OrderResponse]

func NewListOrdersResponse(orders []*order.Order) ListOrdersResponse {
	return types.NewListResponse(lo.Map(orders, func(o *order.Order, _ int) *OrderResponse {
		return NewOrderResponse(o)
	}))
}
