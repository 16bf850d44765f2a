package payment

import (
	"context"
	"time"

	"github.com/flexprice/storefront/internal/types"
)

// IntentRequest asks the payment provider to prepare a charge.
// Amount and Currency are taken verbatim from the tax decision.
type IntentRequest struct {
	OrderID        string
	Amount         int64
	Currency       types.Currency
	Description    string
	IdempotencyKey string
	Metadata       types.Metadata
}

// Intent is the provider side representation of a prepared charge
type Intent struct {
	ID           string         `json:"id"`
	ClientSecret string         `json:"client_secret"`
	Status       string         `json:"status"`
	Amount       int64          `json:"amount"`
	Currency     types.Currency `json:"currency"`
	Provider     string         `json:"provider"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Gateway creates payment intents with a payment provider
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*Intent, error)
	Provider() string
}
