package product

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, activeOnly bool) ([]*Product, error)
}
