package tax

import (
	"encoding/json"
	"math"
	"testing"

	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var euMembers = []string{
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE", "GR", "HU", "IE",
	"IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT", "RO", "SK", "SI", "ES", "SE",
}

func TestIsEUMember(t *testing.T) {
	require.Len(t, euMembers, EUMemberCount)

	for _, country := range euMembers {
		assert.True(t, IsEUMember(country), country)
		assert.Equal(t, types.CurrencyEUR, CurrencyForCountry(country), country)
	}

	for _, country := range []string{"US", "GB", "CA", "JP", "AU", "CH", "NO", "", "XX", "??", "DEU", "Atlantis"} {
		assert.False(t, IsEUMember(country), country)
		assert.Equal(t, types.CurrencyUSD, CurrencyForCountry(country), country)
	}
}

func TestIsEUMember_NormalizesInput(t *testing.T) {
	assert.True(t, IsEUMember("de"))
	assert.True(t, IsEUMember(" Fr "))
	assert.True(t, IsEUMember("Germany"))
	assert.True(t, IsEUMember("el"))
}

func TestRateForCountry(t *testing.T) {
	tests := []struct {
		country  string
		expected string
	}{
		{country: "DE", expected: "0.19"},
		{country: "FR", expected: "0.2"},
		{country: "IT", expected: "0.22"},
		{country: "ES", expected: "0.21"},
		{country: "AT", expected: "0.2"},
		{country: "BE", expected: "0.21"},
		{country: "NL", expected: "0.21"},
		{country: "FI", expected: "0.24"},
		{country: "HU", expected: "0.27"},
		{country: "LU", expected: "0.17"},
		{country: "US", expected: "0"},
		{country: "GB", expected: "0"},
		{country: "", expected: "0"},
		{country: "nowhere", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(RateForCountry(tt.country)), "got %s", RateForCountry(tt.country))
		})
	}
}

func TestRateForCountry_CoversEveryMemberInRange(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, country := range euMembers {
		rate := RateForCountry(country)
		assert.True(t, rate.IsPositive(), country)
		assert.True(t, rate.LessThan(one), country)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		rate     decimal.Decimal
		expected string
	}{
		{name: "germany", country: "DE", rate: RateForCountry("DE"), expected: "MwSt. (19%)"},
		{name: "france", country: "FR", rate: RateForCountry("FR"), expected: "TVA (20%)"},
		{name: "italy", country: "IT", rate: RateForCountry("IT"), expected: "IVA (22%)"},
		{name: "spain", country: "ES", rate: RateForCountry("ES"), expected: "IVA (21%)"},
		{name: "generic eu member", country: "NL", rate: RateForCountry("NL"), expected: "VAT (21%)"},
		{name: "generic eu member lower case", country: "fi", rate: RateForCountry("FI"), expected: "VAT (24%)"},
		{name: "us without tax", country: "US", rate: decimal.Zero, expected: "No Sales Tax"},
		{name: "us with tax", country: "US", rate: decimal.RequireFromString("0.0725"), expected: "Sales Tax (7%)"},
		{name: "unknown country", country: "JP", rate: decimal.Zero, expected: "Tax"},
		{name: "missing country", country: "", rate: decimal.Zero, expected: "Tax"},
		{name: "half percent rounds up", country: "AT", rate: decimal.RequireFromString("0.055"), expected: "VAT (6%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Label(tt.country, tt.rate))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		amount   int64
		currency types.Currency
		tax      int64
		total    int64
		label    string
	}{
		{name: "germany", country: "DE", amount: 1000, currency: types.CurrencyEUR, tax: 190, total: 1190, label: "MwSt. (19%)"},
		{name: "france", country: "FR", amount: 1000, currency: types.CurrencyEUR, tax: 200, total: 1200, label: "TVA (20%)"},
		{name: "united states", country: "US", amount: 1000, currency: types.CurrencyUSD, tax: 0, total: 1000, label: "No Sales Tax"},
		{name: "unknown country", country: "", amount: 1000, currency: types.CurrencyUSD, tax: 0, total: 1000, label: "Tax"},
		{name: "zero amount", country: "DE", amount: 0, currency: types.CurrencyEUR, tax: 0, total: 0, label: "MwSt. (19%)"},
		{name: "fraction below half rounds down", country: "AT", amount: 1, currency: types.CurrencyEUR, tax: 0, total: 1, label: "VAT (20%)"},
		{name: "exact half rounds up", country: "DE", amount: 50, currency: types.CurrencyEUR, tax: 10, total: 60, label: "MwSt. (19%)"},
		{name: "fraction above half", country: "DE", amount: 1999, currency: types.CurrencyEUR, tax: 380, total: 2379, label: "MwSt. (19%)"},
		{name: "fraction below half", country: "DE", amount: 1001, currency: types.CurrencyEUR, tax: 190, total: 1191, label: "MwSt. (19%)"},
		{name: "exact half rounds up for generic vat", country: "NL", amount: 50, currency: types.CurrencyEUR, tax: 11, total: 61, label: "VAT (21%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.country, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.currency, d.Currency)
			assert.Equal(t, tt.amount, d.BaseAmount)
			assert.Equal(t, tt.tax, d.TaxAmount)
			assert.Equal(t, tt.total, d.TotalAmount)
			assert.Equal(t, tt.label, d.Label)
			assert.NoError(t, d.Validate())
		})
	}
}

func TestResolve_UnassignedCodeDegradesToUnknown(t *testing.T) {
	for _, country := range []string{"ZZ", "qq", "XX"} {
		d, err := Resolve(country, 1000)
		require.NoError(t, err)
		assert.Equal(t, types.CountryUnknown, d.Country, country)
		assert.Equal(t, types.CurrencyUSD, d.Currency, country)
		assert.Equal(t, int64(0), d.TaxAmount, country)
		assert.Equal(t, "Tax", d.Label, country)
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	first, err := Resolve("DE", 4999)
	require.NoError(t, err)
	second, err := Resolve("DE", 4999)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	upper, err := Resolve("DE", 1000)
	require.NoError(t, err)
	lower, err := Resolve("de", 1000)
	require.NoError(t, err)
	named, err := Resolve("Germany", 1000)
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, named)
	assert.Equal(t, "DE", lower.Country)
}

func TestResolve_RejectsNegativeAmount(t *testing.T) {
	d, err := Resolve("DE", -1)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidAmount(err))
}

func TestResolve_RejectsOverflow(t *testing.T) {
	_, err := Resolve("DE", math.MaxInt64-10)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidAmount(err))

	d, err := Resolve("US", math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), d.TotalAmount)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
		wantErr  bool
	}{
		{name: "whole number", raw: "1000", expected: 1000},
		{name: "padded", raw: " 42 ", expected: 42},
		{name: "zero", raw: "0", expected: 0},
		{name: "empty", raw: "", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "fractional", raw: "10.5", wantErr: true},
		{name: "not a number", raw: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsInvalidAmount(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestDecisionValidate(t *testing.T) {
	d, err := Resolve("DE", 1000)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	tampered := *d
	tampered.TotalAmount++
	assert.True(t, ierr.IsInvalidOperation(tampered.Validate()))

	wrongCurrency := *d
	wrongCurrency.Currency = types.CurrencyUSD
	assert.True(t, ierr.IsInvalidOperation(wrongCurrency.Validate()))

	var missing *Decision
	assert.Error(t, missing.Validate())
}

func TestRates(t *testing.T) {
	rates := Rates()
	require.Len(t, rates, EUMemberCount)
	assert.Equal(t, "AT", rates[0].Country)
	assert.Equal(t, "SK", rates[len(rates)-1].Country)

	rates[0].Rate = decimal.NewFromInt(0)
	assert.True(t, RateForCountry("AT").Equal(decimal.RequireFromString("0.20")))

	entry, ok := Lookup("de")
	require.True(t, ok)
	assert.Equal(t, "MwSt.", entry.LocalName)

	_, ok = Lookup("US")
	assert.False(t, ok)
}
