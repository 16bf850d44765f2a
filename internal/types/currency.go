package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an upper-case ISO-4217 code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// SupportedCurrencies lists every currency the storefront prices in
var SupportedCurrencies = []Currency{CurrencyEUR, CurrencyUSD}

// currencySymbols maps currency codes to their display symbol
var currencySymbols = map[Currency]string{
	CurrencyEUR: "€",
	CurrencyUSD: "$",
}

// currencyPrecision is the number of minor unit digits per currency
var currencyPrecision = map[Currency]int32{
	CurrencyEUR: 2,
	CurrencyUSD: 2,
}

func (c Currency) String() string {
	return string(c)
}

// Lower returns the lower-case code, which is what payment providers expect
func (c Currency) Lower() string {
	return strings.ToLower(string(c))
}

// IsSupported reports whether the currency is one the storefront prices in
func (c Currency) IsSupported() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol, or the code itself if unknown
func (c Currency) Symbol() string {
	if symbol, ok := currencySymbols[c]; ok {
		return symbol
	}
	return string(c)
}

// Precision returns the number of minor unit digits, defaulting to 2
func (c Currency) Precision() int32 {
	if p, ok := currencyPrecision[c]; ok {
		return p
	}
	return 2
}

// ParseCurrency normalizes a currency code, returning false for unsupported codes
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	return c, c.IsSupported()
}

// ToMajorUnits converts an amount of minor units to a decimal in major units
func (c Currency) ToMajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -c.Precision())
}

// FormatAmount renders minor units for display, e.g. 1190 EUR -> "€11.90"
func (c Currency) FormatAmount(minor int64) string {
	major := c.ToMajorUnits(minor)
	sign := ""
	if major.IsNegative() {
		sign = "-"
		major = major.Abs()
	}
	return sign + c.Symbol() + major.StringFixed(c.Precision())
}
