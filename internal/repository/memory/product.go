package memory

import (
	"context"

	"github.com/flexprice/storefront/internal/domain/product"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
)

// ProductStore implements product.Repository
type ProductStore struct {
	*Store[*product.Product]
	logger *logger.Logger
}

var _ product.Repository = (*ProductStore)(nil)

func NewProductStore(logger *logger.Logger) *ProductStore {
	return &ProductStore{
		Store:  NewStore[*product.Product]("product"),
		logger: logger,
	}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product is required").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.Slug == p.Slug {
			return ierr.NewError("product slug already exists").
				WithHint("A product with this slug already exists").
				WithReportableDetails(map[string]any{
					"slug": p.Slug,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	if _, exists := s.items[p.ID]; exists {
		return ierr.NewError("product already exists").
			WithHint("A product with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[p.ID] = p
	return nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	return s.Store.Get(ctx, id)
}

func (s *ProductStore) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	p, ok := s.Find(ctx, func(_ context.Context, p *product.Product) bool {
		return p.Slug == slug
	})
	if !ok {
		return nil, ierr.NewError("product not found").
			WithHint("The product could not be found").
			WithReportableDetails(map[string]any{
				"slug": slug,
			}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *ProductStore) List(ctx context.Context, activeOnly bool) ([]*product.Product, error) {
	return s.Store.List(ctx,
		func(_ context.Context, p *product.Product) bool {
			return !activeOnly || p.Active
		},
		func(i, j *product.Product) bool {
			return i.Slug < j.Slug
		},
	), nil
}
