package dto

import (
	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/types"
)

// ProductPriceResponse is a catalog item priced for one country
type ProductPriceResponse struct {
	ID             string            `json:"id"`
	Slug           string            `json:"slug"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Kind           types.ProductKind `json:"kind"`
	Country        string            `json:"country"`
	Currency       types.Currency    `json:"currency"`
	BaseAmount     int64             `json:"base_amount"`
	TaxAmount      int64             `json:"tax_amount"`
	TotalAmount    int64             `json:"total_amount"`
	TaxRate        float64           `json:"tax_rate"`
	TaxLabel       string            `json:"tax_label"`
	FormattedBase  string            `json:"formatted_base"`
	FormattedTax   string            `json:"formatted_tax"`
	FormattedTotal string            `json:"formatted_total"`
}

func NewProductPriceResponse(p *product.Product, d *tax.Decision) *ProductPriceResponse {
	return &ProductPriceResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Description:    p.Description,
		Kind:           p.Kind,
		Country:        d.Country,
		Currency:       d.Currency,
		BaseAmount:     d.BaseAmount,
		TaxAmount:      d.TaxAmount,
		TotalAmount:    d.TotalAmount,
		TaxRate:        d.Rate.InexactFloat64(),
		TaxLabel:       d.Label,
		FormattedBase:  d.FormattedBase(),
		FormattedTax:   d.FormattedTax(),
		FormattedTotal: d.FormattedTotal(),
	}
}

type ListProductPricesResponse = types.ListResponse[*ProductPriceResponse]
