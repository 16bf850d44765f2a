package order

import (
	"time"

	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/types"
)

// LineItem is one product row of an order, priced in the order currency
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Amount    int64  `json:"amount"`
}

// Order records a checkout. Tax holds the decision the payment intent was created from.
type Order struct {
	ID              string            `json:"id"`
	Number          string            `json:"number"`
	UserID          string            `json:"user_id,omitempty"`
	Country         string            `json:"country"`
	Currency        types.Currency    `json:"currency"`
	LineItems       []LineItem        `json:"line_items"`
	Tax             tax.Decision      `json:"tax"`
	PaymentIntentID string            `json:"payment_intent_id"`
	Status          types.OrderStatus `json:"status"`
	Metadata        types.Metadata    `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
