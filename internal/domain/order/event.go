package order

import (
	"time"

	"github.com/flexprice/storefront/internal/types"
)

const (
	EventOrderCreated = "order.created"
)

// Event is the payload published on the checkout event topic
type Event struct {
	ID              string         `json:"id"`
	EventName       string         `json:"event_name"`
	OrderID         string         `json:"order_id"`
	OrderNumber     string         `json:"order_number"`
	UserID          string         `json:"user_id,omitempty"`
	Country         string         `json:"country"`
	Currency        types.Currency `json:"currency"`
	BaseAmount      int64          `json:"base_amount"`
	TaxAmount       int64          `json:"tax_amount"`
	TotalAmount     int64          `json:"total_amount"`
	PaymentIntentID string         `json:"payment_intent_id"`
	Timestamp       time.Time      `json:"timestamp"`
}

// NewCreatedEvent builds the order.created event for a stored order
func NewCreatedEvent(o *Order) *Event {
	return &Event{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		EventName:       EventOrderCreated,
		OrderID:         o.ID,
		OrderNumber:     o.Number,
		UserID:          o.UserID,
		Country:         o.Country,
		Currency:        o.Currency,
		BaseAmount:      o.Tax.BaseAmount,
		TaxAmount:       o.Tax.TaxAmount,
		TotalAmount:     o.Tax.TotalAmount,
		PaymentIntentID: o.PaymentIntentID,
		Timestamp:       time.Now().UTC(),
	}
}
