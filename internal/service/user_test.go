package service

import (
	"testing"

	"github.com/flexprice/storefront/internal/api/dto"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/testutil"
	"github.com/flexprice/storefront/internal/types"
	"github.com/stretchr/testify/suite"
)

type UserServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UserService
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewUserService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *UserServiceSuite) TestRegister() {
	testCases := []struct {
		name          string
		req           *dto.RegisterUserRequest
		setup         func()
		expectedError func(error) bool
		country       string
		currency      types.Currency
	}{
		{
			name:     "successful_registration",
			req:      &dto.RegisterUserRequest{Email: "Max@Example.com", Name: "Max", Country: "de"},
			country:  "DE",
			currency: types.CurrencyEUR,
		},
		{
			name:     "country_by_name",
			req:      &dto.RegisterUserRequest{Email: "sam@example.com", Country: "united states"},
			country:  "US",
			currency: types.CurrencyUSD,
		},
		{
			name: "duplicate_email",
			req:  &dto.RegisterUserRequest{Email: "taken@example.com", Country: "FR"},
			setup: func() {
				_, err := s.service.Register(s.GetContext(), &dto.RegisterUserRequest{
					Email:   "TAKEN@example.com",
					Country: "IT",
				})
				s.Require().NoError(err)
			},
			expectedError: ierr.IsAlreadyExists,
		},
		{
			name:          "unknown_country",
			req:           &dto.RegisterUserRequest{Email: "lost@example.com", Country: "Atlantis"},
			expectedError: ierr.IsValidation,
		},
		{
			name:          "unassigned_country_code",
			req:           &dto.RegisterUserRequest{Email: "nowhere@example.com", Country: "QQ"},
			expectedError: ierr.IsValidation,
		},
		{
			name:          "missing_country",
			req:           &dto.RegisterUserRequest{Email: "lost@example.com"},
			expectedError: ierr.IsValidation,
		},
		{
			name:          "invalid_email_format",
			req:           &dto.RegisterUserRequest{Email: "not-an-email", Country: "DE"},
			expectedError: ierr.IsValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}

			resp, err := s.service.Register(s.GetContext(), tc.req)
			if tc.expectedError != nil {
				s.Error(err)
				s.True(tc.expectedError(err), "unexpected error: %v", err)
				return
			}

			s.Require().NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(tc.country, resp.Country)
			s.Equal(tc.currency, resp.Currency)
		})
	}
}

func (s *UserServiceSuite) TestRegister_NormalizesEmail() {
	resp, err := s.service.Register(s.GetContext(), &dto.RegisterUserRequest{
		Email:   "  Mixed.Case@Example.COM ",
		Name:    " Noor ",
		Country: " nl ",
	})
	s.Require().NoError(err)
	s.Equal("mixed.case@example.com", resp.Email)
	s.Equal("Noor", resp.Name)
	s.Equal("NL", resp.Country)

	stored, err := s.GetStores().UserRepo.GetByEmail(s.GetContext(), "mixed.case@example.com")
	s.Require().NoError(err)
	s.Equal(resp.ID, stored.ID)
}

func (s *UserServiceSuite) TestGet() {
	created, err := s.service.Register(s.GetContext(), &dto.RegisterUserRequest{
		Email:   "ines@example.com",
		Country: "ES",
	})
	s.Require().NoError(err)

	got, err := s.service.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(created, got)

	_, err = s.service.Get(s.GetContext(), "user_missing")
	s.True(ierr.IsNotFound(err))

	_, err = s.service.Get(s.GetContext(), " ")
	s.True(ierr.IsValidation(err))
}
