package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		minor    int64
		expected string
	}{
		{name: "euro with cents", currency: CurrencyEUR, minor: 1190, expected: "€11.90"},
		{name: "dollar whole", currency: CurrencyUSD, minor: 1000, expected: "$10.00"},
		{name: "zero", currency: CurrencyEUR, minor: 0, expected: "€0.00"},
		{name: "single cent", currency: CurrencyUSD, minor: 1, expected: "$0.01"},
		{name: "negative", currency: CurrencyUSD, minor: -250, expected: "-$2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.currency.FormatAmount(tt.minor))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency(" eur ")
	assert.True(t, ok)
	assert.Equal(t, CurrencyEUR, c)
	assert.Equal(t, "eur", c.Lower())

	_, ok = ParseCurrency("gbp")
	assert.False(t, ok)
}
