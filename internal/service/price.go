package service

import (
	"context"
	"strings"

	"github.com/flexprice/storefront/internal/api/dto"
	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/domain/tax"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
)

// PriceService prices the catalog for a country
type PriceService interface {
	ListProductPrices(ctx context.Context, country string) (*dto.ListProductPricesResponse, error)
	GetProductPrice(ctx context.Context, idOrSlug string, country string) (*dto.ProductPriceResponse, error)
}

type priceService struct {
	ServiceParams
}

func NewPriceService(params ServiceParams) PriceService {
	return &priceService{ServiceParams: params}
}

func (s *priceService) ListProductPrices(ctx context.Context, country string) (*dto.ListProductPricesResponse, error) {
	country = countryOrHint(ctx, country)

	products, err := s.ProductRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProductPriceResponse, 0, len(products))
	for _, p := range products {
		item, err := priceProduct(p, country)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	resp := types.NewListResponse(items)
	return &resp, nil
}

func (s *priceService) GetProductPrice(ctx context.Context, idOrSlug string, country string) (*dto.ProductPriceResponse, error) {
	p, err := getProduct(ctx, s.ServiceParams, idOrSlug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ierr.NewError("product is not available").
			WithHint("Product is no longer sold").
			WithReportableDetails(map[string]any{
				"product_id": p.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return priceProduct(p, countryOrHint(ctx, country))
}

func priceProduct(p *product.Product, country string) (*dto.ProductPriceResponse, error) {
	base, err := basePrice(p, tax.CurrencyForCountry(country))
	if err != nil {
		return nil, err
	}

	decision, err := tax.Resolve(country, base)
	if err != nil {
		return nil, err
	}
	return dto.NewProductPriceResponse(p, decision), nil
}

func basePrice(p *product.Product, currency types.Currency) (int64, error) {
	amount, ok := p.PriceIn(currency)
	if !ok {
		return 0, ierr.NewError("product has no price in currency").
			WithHint("Product is not sold in your currency").
			WithReportableDetails(map[string]any{
				"product_id": p.ID,
				"currency":   currency,
			}).
			Mark(ierr.ErrNotFound)
	}
	return amount, nil
}

// countryOrHint falls back to the country header attached by the request middleware
func countryOrHint(ctx context.Context, country string) string {
	if strings.TrimSpace(country) != "" {
		return country
	}
	return types.GetCountry(ctx)
}

// getProduct resolves a product by ID, then by slug, through the cache
func getProduct(ctx context.Context, params ServiceParams, idOrSlug string) (*product.Product, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if idOrSlug == "" {
		return nil, ierr.NewError("product id is required").
			WithHint("Product ID is required").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixProduct, idOrSlug)
	if params.Cache != nil {
		if cached, found := params.Cache.Get(ctx, key); found {
			if p, ok := cached.(*product.Product); ok {
				return p, nil
			}
		}
	}

	p, err := params.ProductRepo.Get(ctx, idOrSlug)
	if ierr.IsNotFound(err) {
		p, err = params.ProductRepo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	if params.Cache != nil {
		params.Cache.Set(ctx, key, p, 0)
	}
	return p, nil
}
