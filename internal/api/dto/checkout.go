package dto

import (
	"sort"
	"strconv"

	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/flexprice/storefront/internal/domain/tax"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
	"github.com/flexprice/storefront/internal/validator"
	"github.com/samber/lo"
)

// CartItem is one product and quantity in a checkout request
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1,max=1000"`
}

// CheckoutPreviewRequest prices a cart. When UserID is set the country of the
// user profile is used and Country is ignored.
type CheckoutPreviewRequest struct {
	UserID  string     `json:"user_id,omitempty"`
	Country string     `json:"country,omitempty"`
	Items   []CartItem `json:"items" validate:"required,min=1,dive"`
}

func (r *CheckoutPreviewRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	dups := lo.FindDuplicatesBy(r.Items, func(item CartItem) string {
		return item.ProductID
	})
	if len(dups) > 0 {
		return ierr.NewError("duplicate product in cart").
			WithHint("Each product may appear only once, use quantity instead").
			WithReportableDetails(map[string]any{
				"product_id": dups[0].ProductID,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// IdempotencyParams returns the parameters a payment intent idempotency key is derived from.
// userID and country are the resolved billing values, not the raw request fields.
// Items are sorted so that cart order does not change the key.
func (r *CheckoutPreviewRequest) IdempotencyParams(userID, country string) map[string]interface{} {
	items := lo.Map(r.Items, func(item CartItem, _ int) string {
		return item.ProductID + "x" + strconv.FormatInt(item.Quantity, 10)
	})
	sort.Strings(items)

	return map[string]interface{}{
		"user_id": userID,
		"country": country,
		"items":   items,
	}
}

// CreatePaymentIntentRequest prices a cart and prepares the charge for it
type CreatePaymentIntentRequest struct {
	CheckoutPreviewRequest
	Metadata types.Metadata `json:"metadata,omitempty"`
	// IdempotencyKey is read from the Idempotency-Key header when absent from the body
	IdempotencyKey string `json:"idempotency_key,omitempty" validate:"omitempty,max=255"`
}

func (r *CreatePaymentIntentRequest) Validate() error {
	if err := r.CheckoutPreviewRequest.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

type CheckoutLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Amount    int64  `json:"amount"`
}

func newCheckoutLines(lines []order.LineItem) []*CheckoutLineResponse {
	return lo.Map(lines, func(l order.LineItem, _ int) *CheckoutLineResponse {
		return &CheckoutLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount,
		}
	})
}

// CheckoutPreviewResponse is the priced cart
type CheckoutPreviewResponse struct {
	Country        string                  `json:"country"`
	Currency       types.Currency          `json:"currency"`
	Lines          []*CheckoutLineResponse `json:"lines"`
	BaseAmount     int64                   `json:"base_amount"`
	TaxAmount      int64                   `json:"tax_amount"`
	TotalAmount    int64                   `json:"total_amount"`
	TaxRate        float64                 `json:"tax_rate"`
	TaxLabel       string                  `json:"tax_label"`
	FormattedTotal string                  `json:"formatted_total"`
}

func NewCheckoutPreviewResponse(lines []order.LineItem, d *tax.Decision) *CheckoutPreviewResponse {
	return &CheckoutPreviewResponse{
		Country:        d.Country,
		Currency:       d.Currency,
		Lines:          newCheckoutLines(lines),
		BaseAmount:     d.BaseAmount,
		TaxAmount:      d.TaxAmount,
		TotalAmount:    d.TotalAmount,
		TaxRate:        d.Rate.InexactFloat64(),
		TaxLabel:       d.Label,
		FormattedTotal: d.FormattedTotal(),
	}
}

// PaymentIntentResponse carries what the frontend needs to confirm the charge
type PaymentIntentResponse struct {
	OrderID         string                   `json:"order_id"`
	OrderNumber     string                   `json:"order_number"`
	PaymentIntentID string                   `json:"payment_intent_id"`
	ClientSecret    string                   `json:"client_secret"`
	Provider        string                   `json:"provider"`
	Amount          int64                    `json:"amount"`
	Currency        types.Currency           `json:"currency"`
	IdempotencyKey  string                   `json:"idempotency_key"`
	Summary         *CheckoutPreviewResponse `json:"summary"`
}

func NewPaymentIntentResponse(o *order.Order, intent *payment.Intent, idempotencyKey string) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		OrderID:         o.ID,
		OrderNumber:     o.Number,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Provider:        intent.Provider,
		Amount:          o.Tax.TotalAmount,
		Currency:        o.Currency,
		IdempotencyKey:  idempotencyKey,
		Summary:         NewCheckoutPreviewResponse(o.LineItems, &o.Tax),
	}
}
