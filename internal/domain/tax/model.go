package tax

import (
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
	"github.com/shopspring/decimal"
)

// Decision is the tax outcome for one country and base amount.
// It is built fresh by Resolve and must be passed on as is; callers never recompute it.
type Decision struct {
	Country     string          `json:"country"`
	Currency    types.Currency  `json:"currency"`
	Rate        decimal.Decimal `json:"rate" swaggertype:"string"`
	Label       string          `json:"label"`
	BaseAmount  int64           `json:"base_amount"`
	TaxAmount   int64           `json:"tax_amount"`
	TotalAmount int64           `json:"total_amount"`
}

// Validate checks the internal consistency of a decision before it is used to charge a customer
func (d *Decision) Validate() error {
	if d == nil {
		return ierr.NewError("tax decision is nil").
			WithHint("Tax could not be determined").
			Mark(ierr.ErrInvalidOperation)
	}

	if d.BaseAmount < 0 || d.TaxAmount < 0 {
		return ierr.NewError("tax decision has negative amounts").
			WithHint("Amounts must be zero or greater").
			WithReportableDetails(map[string]any{
				"base_amount": d.BaseAmount,
				"tax_amount":  d.TaxAmount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	if d.TotalAmount != d.BaseAmount+d.TaxAmount {
		return ierr.NewError("tax decision total does not add up").
			WithHint("Order total is inconsistent").
			WithReportableDetails(map[string]any{
				"base_amount":  d.BaseAmount,
				"tax_amount":   d.TaxAmount,
				"total_amount": d.TotalAmount,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	if d.Currency != CurrencyForCountry(d.Country) {
		return ierr.NewError("tax decision currency does not match country").
			WithHint("Order currency is inconsistent with the billing country").
			WithReportableDetails(map[string]any{
				"country":  d.Country,
				"currency": d.Currency,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	if d.Rate.IsNegative() || d.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return ierr.NewError("tax decision rate out of range").
			WithHint("Tax rate is invalid").
			Mark(ierr.ErrInvalidOperation)
	}

	return nil
}

// FormattedBase renders the base amount in the decision currency
func (d *Decision) FormattedBase() string {
	return d.Currency.FormatAmount(d.BaseAmount)
}

// FormattedTax renders the tax amount in the decision currency
func (d *Decision) FormattedTax() string {
	return d.Currency.FormatAmount(d.TaxAmount)
}

// FormattedTotal renders the total in the decision currency
func (d *Decision) FormattedTotal() string {
	return d.Currency.FormatAmount(d.TotalAmount)
}

// RateEntry is one row of the static VAT table
type RateEntry struct {
	Country string          `json:"country"`
	Rate    decimal.Decimal `json:"rate" swaggertype:"string"`
	// LocalName is the national name of the tax, empty when the generic "VAT" applies
	LocalName string `json:"local_name,omitempty"`
}
