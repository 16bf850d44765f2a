package service

import (
	"context"

	"github.com/flexprice/storefront/internal/api/dto"
	"github.com/flexprice/storefront/internal/domain/tax"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
)

// TaxService exposes tax resolution to the debug endpoint, the CLI and the tax info routes
type TaxService interface {
	Calculate(ctx context.Context, country string, amount int64) (*dto.TaxCalculationResponse, error)
	CalculateForUser(ctx context.Context, userID string, amount int64) (*dto.TaxCalculationResponse, error)
	GetCountryInfo(ctx context.Context, country string) (*dto.CountryTaxInfoResponse, error)
	ListRates(ctx context.Context) (*dto.ListTaxRatesResponse, error)
}

type taxService struct {
	ServiceParams
}

func NewTaxService(params ServiceParams) TaxService {
	return &taxService{ServiceParams: params}
}

// Calculate resolves tax for a country and base amount. Unknown countries fall
// back to USD without tax; only the amount can make it fail.
func (s *taxService) Calculate(ctx context.Context, country string, amount int64) (*dto.TaxCalculationResponse, error) {
	decision, err := tax.Resolve(country, amount)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("calculated tax",
		"country", decision.Country,
		"input_country", country,
		"currency", decision.Currency,
		"base_amount", decision.BaseAmount,
		"tax_amount", decision.TaxAmount,
		"request_id", types.GetRequestID(ctx),
	)

	return dto.NewTaxCalculationResponse(decision), nil
}

func (s *taxService) CalculateForUser(ctx context.Context, userID string, amount int64) (*dto.TaxCalculationResponse, error) {
	u, err := getUser(ctx, s.ServiceParams, userID)
	if err != nil {
		return nil, err
	}
	return s.Calculate(ctx, u.Country, amount)
}

func (s *taxService) GetCountryInfo(ctx context.Context, country string) (*dto.CountryTaxInfoResponse, error) {
	code := types.NormalizeCountry(country)
	if code == types.CountryUnknown {
		return nil, ierr.NewError("unknown country").
			WithHint("Country must be an ISO-3166 alpha-2 code or a country name").
			WithReportableDetails(map[string]any{
				"country": country,
			}).
			Mark(ierr.ErrValidation)
	}

	rate := tax.RateForCountry(code)
	return &dto.CountryTaxInfoResponse{
		Country:  code,
		EUMember: tax.IsEUMember(code),
		Currency: tax.CurrencyForCountry(code),
		TaxRate:  rate.InexactFloat64(),
		TaxLabel: tax.Label(code, rate),
	}, nil
}

func (s *taxService) ListRates(ctx context.Context) (*dto.ListTaxRatesResponse, error) {
	resp := dto.NewListTaxRatesResponse(tax.Rates())
	return &resp, nil
}
