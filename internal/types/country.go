package types

import (
	"strings"

	"github.com/biter777/countries"
)

// CountryUnknown is the normalized form of missing or unrecognised country input
const CountryUnknown = ""

// countryNames maps native and colloquial country names the ISO registry does not
// carry to their ISO-3166-1 alpha-2 code
var countryNames = map[string]string{
	"österreich":               "AT",
	"czechia":                  "CZ",
	"czech republic":           "CZ",
	"deutschland":              "DE",
	"italia":                   "IT",
	"holland":                  "NL",
	"the netherlands":          "NL",
	"españa":                   "ES",
	"united states":            "US",
	"united states of america": "US",
	"usa":                      "US",
	"great britain":            "GB",
}

// countryAliases covers two letter inputs that are not the ISO code of the country they name
var countryAliases = map[string]string{
	"EL": "GR", // EU VAT prefix for Greece
	"UK": "GB",
}

// NormalizeCountry returns the upper-case ISO-3166-1 alpha-2 code for the input.
// Input may be any case, padded with whitespace, or a full country name.
// Anything that is not an assigned ISO code or a known name returns CountryUnknown.
func NormalizeCountry(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return CountryUnknown
	}

	if code, ok := countryNames[strings.ToLower(s)]; ok {
		return code
	}

	switch {
	case len(s) == 2:
		code := strings.ToUpper(s)
		if code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
			return CountryUnknown
		}
		if alias, ok := countryAliases[code]; ok {
			return alias
		}
		return lookupCountry(code)
	case len(s) > 3:
		return lookupCountry(s)
	}

	// alpha-3 codes are not accepted
	return CountryUnknown
}

// lookupCountry resolves an alpha-2 code or an english name against the ISO-3166 registry
func lookupCountry(s string) string {
	c := countries.ByName(s)
	if c == countries.Unknown {
		return CountryUnknown
	}
	if alpha2 := c.Alpha2(); len(alpha2) == 2 {
		return alpha2
	}
	return CountryUnknown
}

// IsKnownCountry reports whether the input normalizes to an assigned ISO country code
func IsKnownCountry(input string) bool {
	return NormalizeCountry(input) != CountryUnknown
}
