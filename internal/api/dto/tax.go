package dto

import (
	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/types"
	"github.com/samber/lo"
)

// TaxCalculationResponse is the body of the tax debug endpoint and the taxcalc CLI.
// Field names are consumed by the storefront frontend and must not change.
type TaxCalculationResponse struct {
	Country    string         `json:"country"`
	Currency   types.Currency `json:"currency"`
	TaxRate    float64        `json:"taxRate"`
	BaseAmount int64          `json:"baseAmount"`
	TaxAmount  int64          `json:"taxAmount"`
	TaxLabel   string         `json:"taxLabel"`
	Total      int64          `json:"total"`
}

func NewTaxCalculationResponse(d *tax.Decision) *TaxCalculationResponse {
	return &TaxCalculationResponse{
		Country:    d.Country,
		Currency:   d.Currency,
		TaxRate:    d.Rate.InexactFloat64(),
		BaseAmount: d.BaseAmount,
		TaxAmount:  d.TaxAmount,
		TaxLabel:   d.Label,
		Total:      d.TotalAmount,
	}
}

// CountryTaxInfoResponse describes how a country is billed
type CountryTaxInfoResponse struct {
	Country  string         `json:"country"`
	EUMember bool           `json:"euMember"`
	Currency types.Currency `json:"currency"`
	TaxRate  float64        `json:"taxRate"`
	TaxLabel string         `json:"taxLabel"`
}

// TaxRateResponse is one row of the VAT table
type TaxRateResponse struct {
	Country  string  `json:"country"`
	TaxRate  float64 `json:"taxRate"`
	TaxLabel string  `json:"taxLabel"`
}

// ListTaxRatesResponse lists the VAT rate of every EU member state
type ListTaxRatesResponse = types.ListResponse[*TaxRateResponse]

func NewListTaxRatesResponse(entries []tax.RateEntry) ListTaxRatesResponse {
	return types.NewListResponse(lo.Map(entries, func(e tax.RateEntry, _ int) *TaxRateResponse {
		return &TaxRateResponse{
			Country:  e.Country,
			TaxRate:  e.Rate.InexactFloat64(),
			TaxLabel: tax.Label(e.Country, e.Rate),
		}
	}))
}
