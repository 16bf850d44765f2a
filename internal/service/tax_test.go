package service

import (
	"testing"

	"github.com/flexprice/storefront/internal/api/dto"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/testutil"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stretchr/testify/suite"
)

type TaxServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     TaxService
	userService UserService
}

func TestTaxService(t *testing.T) {
	suite.Run(t, new(TaxServiceSuite))
}

func (s *TaxServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewTaxService(params)
	s.userService = NewUserService(params)
}

func (s *TaxServiceSuite) TestCalculate() {
	testCases := []struct {
		name     string
		country  string
		amount   int64
		expected *dto.TaxCalculationResponse
	}{
		{
			name:    "germany",
			country: "DE",
			amount:  1000,
			expected: &dto.TaxCalculationResponse{
				Country: "DE", Currency: types.CurrencyEUR, TaxRate: 0.19,
				BaseAmount: 1000, TaxAmount: 190, TaxLabel: "MwSt. (19%)", Total: 1190,
			},
		},
		{
			name:    "united_states",
			country: "us",
			amount:  1000,
			expected: &dto.TaxCalculationResponse{
				Country: "US", Currency: types.CurrencyUSD, TaxRate: 0,
				BaseAmount: 1000, TaxAmount: 0, TaxLabel: "No Sales Tax", Total: 1000,
			},
		},
		{
			name:    "missing_country_falls_back",
			country: "",
			amount:  500,
			expected: &dto.TaxCalculationResponse{
				Country: "", Currency: types.CurrencyUSD, TaxRate: 0,
				BaseAmount: 500, TaxAmount: 0, TaxLabel: "Tax", Total: 500,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Calculate(s.GetContext(), tc.country, tc.amount)
			s.NoError(err)
			s.Equal(tc.expected, resp)
		})
	}
}

func (s *TaxServiceSuite) TestCalculate_NegativeAmount() {
	resp, err := s.service.Calculate(s.GetContext(), "DE", -100)
	s.Nil(resp)
	s.True(ierr.IsInvalidAmount(err))
}

func (s *TaxServiceSuite) TestCalculateForUser() {
	user, err := s.userService.Register(s.GetContext(), &dto.RegisterUserRequest{
		Email:   "anna@example.com",
		Country: "France",
	})
	s.Require().NoError(err)

	resp, err := s.service.CalculateForUser(s.GetContext(), user.ID, 1000)
	s.NoError(err)
	s.Equal("FR", resp.Country)
	s.Equal(int64(200), resp.TaxAmount)
	s.Equal("TVA (20%)", resp.TaxLabel)

	_, err = s.service.CalculateForUser(s.GetContext(), "user_missing", 1000)
	s.True(ierr.IsNotFound(err))
}

func (s *TaxServiceSuite) TestGetCountryInfo() {
	info, err := s.service.GetCountryInfo(s.GetContext(), "de")
	s.NoError(err)
	s.Equal(&dto.CountryTaxInfoResponse{
		Country:  "DE",
		EUMember: true,
		Currency: types.CurrencyEUR,
		TaxRate:  0.19,
		TaxLabel: "MwSt. (19%)",
	}, info)

	info, err = s.service.GetCountryInfo(s.GetContext(), "Japan")
	s.NoError(err)
	s.False(info.EUMember)
	s.Equal(types.CurrencyUSD, info.Currency)
	s.Equal("Tax", info.TaxLabel)

	_, err = s.service.GetCountryInfo(s.GetContext(), "??")
	s.True(ierr.IsValidation(err))
}

func (s *TaxServiceSuite) TestListRates() {
	resp, err := s.service.ListRates(s.GetContext())
	s.NoError(err)
	s.Equal(27, resp.Total)
	s.Len(resp.Items, 27)
	s.Equal("AT", resp.Items[0].Country)
	s.Equal("VAT (20%)", resp.Items[0].TaxLabel)
}
