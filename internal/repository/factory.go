package repository

import (
	"context"

	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/domain/user"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/repository/memory"
)

func NewUserRepository(logger *logger.Logger) user.Repository {
	return memory.NewUserStore(logger)
}

func NewOrderRepository(logger *logger.Logger) order.Repository {
	return memory.NewOrderStore(logger)
}

// NewProductRepository returns the product store, seeded with the demo catalog when configured
func NewProductRepository(cfg *config.Configuration, logger *logger.Logger) (product.Repository, error) {
	store := memory.NewProductStore(logger)
	if !cfg.Catalog.Seed {
		return store, nil
	}

	catalog := memory.DefaultCatalog()
	if err := memory.SeedCatalog(context.Background(), store, catalog); err != nil {
		return nil, err
	}

	logger.Infow("seeded product catalog", "products", len(catalog))
	return store, nil
}
