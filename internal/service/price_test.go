package service

import (
	"testing"

	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/testutil"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stretchr/testify/suite"
)

type PriceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PriceService
}

func TestPriceService(t *testing.T) {
	suite.Run(t, new(PriceServiceSuite))
}

func (s *PriceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPriceService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *PriceServiceSuite) TestListProductPrices_EU() {
	resp, err := s.service.ListProductPrices(s.GetContext(), "DE")
	s.NoError(err)

	// legacy-modem is inactive
	s.Equal(5, resp.Total)
	for _, item := range resp.Items {
		s.Equal(types.CurrencyEUR, item.Currency)
		s.Equal("MwSt. (19%)", item.TaxLabel)
		s.Equal(item.BaseAmount+item.TaxAmount, item.TotalAmount)
		s.NotEqual("legacy-modem", item.Slug)
	}
}

func (s *PriceServiceSuite) TestListProductPrices_CountryHeaderFallback() {
	ctx := testutil.WithCountry(s.GetContext(), "US")

	resp, err := s.service.ListProductPrices(ctx, "")
	s.NoError(err)
	for _, item := range resp.Items {
		s.Equal(types.CurrencyUSD, item.Currency)
		s.Equal(int64(0), item.TaxAmount)
		s.Equal("No Sales Tax", item.TaxLabel)
	}

	// an explicit country wins over the header
	resp, err = s.service.ListProductPrices(ctx, "FR")
	s.NoError(err)
	s.Equal(types.CurrencyEUR, resp.Items[0].Currency)
}

func (s *PriceServiceSuite) TestGetProductPrice() {
	testCases := []struct {
		name      string
		country   string
		currency  types.Currency
		base      int64
		tax       int64
		formatted string
	}{
		{name: "germany", country: "DE", currency: types.CurrencyEUR, base: 12900, tax: 2451, formatted: "€153.51"},
		{name: "hungary", country: "HU", currency: types.CurrencyEUR, base: 12900, tax: 3483, formatted: "€163.83"},
		{name: "united_states", country: "US", currency: types.CurrencyUSD, base: 13900, tax: 0, formatted: "$139.00"},
		{name: "switzerland", country: "CH", currency: types.CurrencyUSD, base: 13900, tax: 0, formatted: "$139.00"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.GetProductPrice(s.GetContext(), "edge-router", tc.country)
			s.NoError(err)
			s.Equal(tc.currency, resp.Currency)
			s.Equal(tc.base, resp.BaseAmount)
			s.Equal(tc.tax, resp.TaxAmount)
			s.Equal(tc.base+tc.tax, resp.TotalAmount)
			s.Equal(tc.formatted, resp.FormattedTotal)
		})
	}
}

func (s *PriceServiceSuite) TestGetProductPrice_ByID() {
	bySlug, err := s.service.GetProductPrice(s.GetContext(), "smart-plug", "AT")
	s.Require().NoError(err)

	byID, err := s.service.GetProductPrice(s.GetContext(), bySlug.ID, "AT")
	s.NoError(err)
	s.Equal(bySlug, byID)
}

func (s *PriceServiceSuite) TestGetProductPrice_Errors() {
	_, err := s.service.GetProductPrice(s.GetContext(), "does-not-exist", "DE")
	s.True(ierr.IsNotFound(err))

	_, err = s.service.GetProductPrice(s.GetContext(), "legacy-modem", "DE")
	s.True(ierr.IsNotFound(err))

	_, err = s.service.GetProductPrice(s.GetContext(), "", "DE")
	s.True(ierr.IsValidation(err))
}
