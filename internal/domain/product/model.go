package product

import (
	"github.com/flexprice/storefront/internal/types"
)

// Product is a catalog item priced separately in every supported currency
type Product struct {
	ID          string                   `json:"id"`
	Slug        string                   `json:"slug"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Kind        types.ProductKind        `json:"kind"`
	Prices      map[types.Currency]int64 `json:"prices"`
	Active      bool                     `json:"active"`
}

// PriceIn returns the base price in minor units for the given currency
func (p *Product) PriceIn(currency types.Currency) (int64, bool) {
	amount, ok := p.Prices[currency]
	return amount, ok
}
