package tax

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// euStandardRates holds the standard VAT rate of every EU member state.
// Built once at init and never mutated afterwards.
var euStandardRates = mustBuildTable([]rateRow{
	{"AT", "0.20", ""},
	{"BE", "0.21", ""},
	{"BG", "0.20", ""},
	{"HR", "0.25", ""},
	{"CY", "0.19", ""},
	{"CZ", "0.21", ""},
	{"DK", "0.25", ""},
	{"EE", "0.22", ""},
	{"FI", "0.24", ""},
	{"FR", "0.20", "TVA"},
	{"DE", "0.19", "MwSt."},
	{"GR", "0.24", ""},
	{"HU", "0.27", ""},
	{"IE", "0.23", ""},
	{"IT", "0.22", "IVA"},
	{"LV", "0.21", ""},
	{"LT", "0.21", ""},
	{"LU", "0.17", ""},
	{"MT", "0.18", ""},
	{"NL", "0.21", ""},
	{"PL", "0.23", ""},
	{"PT", "0.23", ""},
	{"RO", "0.19", ""},
	{"SK", "0.20", ""},
	{"SI", "0.22", ""},
	{"ES", "0.21", "IVA"},
	{"SE", "0.25", ""},
})

// EUMemberCount is the size of the EU member set
const EUMemberCount = 27

type rateRow struct {
	country   string
	rate      string
	localName string
}

func mustBuildTable(rows []rateRow) map[string]RateEntry {
	one := decimal.NewFromInt(1)
	table := make(map[string]RateEntry, len(rows))

	for _, row := range rows {
		rate := decimal.RequireFromString(row.rate)
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			panic(fmt.Sprintf("tax: rate for %s out of range: %s", row.country, row.rate))
		}
		if _, dup := table[row.country]; dup {
			panic(fmt.Sprintf("tax: duplicate rate entry for %s", row.country))
		}
		table[row.country] = RateEntry{
			Country:   row.country,
			Rate:      rate,
			LocalName: row.localName,
		}
	}

	if len(table) != EUMemberCount {
		panic(fmt.Sprintf("tax: expected %d EU members, got %d", EUMemberCount, len(table)))
	}
	return table
}

// Rates returns a copy of the EU rate table sorted by country code
func Rates() []RateEntry {
	entries := make([]RateEntry, 0, len(euStandardRates))
	for _, entry := range euStandardRates {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Country < entries[j].Country
	})
	return entries
}

// Lookup returns the rate entry of an EU member state
func Lookup(country string) (RateEntry, bool) {
	entry, ok := euStandardRates[normalize(country)]
	return entry, ok
}
