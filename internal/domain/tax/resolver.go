package tax

import (
	"math"
	"strconv"
	"strings"

	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
	"github.com/shopspring/decimal"
)

const (
	countryUS = "US"

	labelFallback   = "Tax"
	labelVAT        = "VAT"
	labelSalesTax   = "Sales Tax"
	labelNoSalesTax = "No Sales Tax"
)

var hundred = decimal.NewFromInt(100)

func normalize(country string) string {
	return types.NormalizeCountry(country)
}

// IsEUMember reports whether the country is one of the 27 EU member states.
// Empty, malformed and unknown input is not a member.
func IsEUMember(country string) bool {
	_, ok := euStandardRates[normalize(country)]
	return ok
}

// CurrencyForCountry is the single place currency is derived from a country:
// EUR for EU members, USD for everything else.
func CurrencyForCountry(country string) types.Currency {
	if IsEUMember(country) {
		return types.CurrencyEUR
	}
	return types.CurrencyUSD
}

// RateForCountry returns the VAT rate of an EU member, and zero for the US and any other country
func RateForCountry(country string) decimal.Decimal {
	if entry, ok := euStandardRates[normalize(country)]; ok {
		return entry.Rate
	}
	return decimal.Zero
}

// Label returns the display label of the tax line, e.g. "MwSt. (19%)" or "VAT (21%)"
func Label(country string, rate decimal.Decimal) string {
	code := normalize(country)

	if entry, ok := euStandardRates[code]; ok {
		name := labelVAT
		if entry.LocalName != "" {
			name = entry.LocalName
		}
		return name + " (" + FormatPercent(rate) + ")"
	}

	if code == countryUS {
		if rate.IsZero() {
			return labelNoSalesTax
		}
		return labelSalesTax + " (" + FormatPercent(rate) + ")"
	}

	return labelFallback
}

// FormatPercent renders a fractional rate as a whole percentage, 0.19 -> "19%"
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).Round(0).String() + "%"
}

// Resolve computes the tax decision for a base amount in minor units.
// Tax is rounded once, half-up, to whole minor units. An unknown country
// resolves to USD with no tax and the generic label.
func Resolve(country string, baseAmount int64) (*Decision, error) {
	if baseAmount < 0 {
		return nil, ierr.NewError("base amount must not be negative").
			WithHint("Amount must be zero or greater").
			WithReportableDetails(map[string]any{
				"amount": baseAmount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	code := normalize(country)
	rate := RateForCountry(code)

	taxAmount := decimal.NewFromInt(baseAmount).Mul(rate).Round(0).IntPart()
	if taxAmount > math.MaxInt64-baseAmount {
		return nil, ierr.NewError("amount overflows after tax").
			WithHint("Amount is too large").
			WithReportableDetails(map[string]any{
				"amount": baseAmount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	return &Decision{
		Country:     code,
		Currency:    CurrencyForCountry(code),
		Rate:        rate,
		Label:       Label(code, rate),
		BaseAmount:  baseAmount,
		TaxAmount:   taxAmount,
		TotalAmount: baseAmount + taxAmount,
	}, nil
}

// ParseAmount parses a base amount given as text, e.g. a query parameter.
// Only whole, non-negative numbers of minor units are accepted.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ierr.NewError("amount is required").
			WithHint("Amount is required").
			Mark(ierr.ErrInvalidAmount)
	}

	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Amount must be a whole number of minor currency units").
			WithReportableDetails(map[string]any{
				"amount": s,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	if amount < 0 {
		return 0, ierr.NewError("amount must not be negative").
			WithHint("Amount must be zero or greater").
			WithReportableDetails(map[string]any{
				"amount": amount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	return amount, nil
}
