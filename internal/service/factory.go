package service

import (
	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/domain/user"
	"github.com/flexprice/storefront/internal/idempotency"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/publisher"
	"github.com/flexprice/storefront/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Sentry *sentry.Service
	Cache  *cache.InMemoryCache

	// Repositories
	UserRepo    user.Repository
	ProductRepo product.Repository
	OrderRepo   order.Repository

	// Payments
	Gateway              payment.Gateway
	IdempotencyGenerator *idempotency.Generator

	// Publishers
	OrderPublisher publisher.OrderPublisher
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	sentry *sentry.Service,
	cache *cache.InMemoryCache,
	userRepo user.Repository,
	productRepo product.Repository,
	orderRepo order.Repository,
	gateway payment.Gateway,
	idempotencyGenerator *idempotency.Generator,
	orderPublisher publisher.OrderPublisher,
) ServiceParams {
	return ServiceParams{
		Logger:               logger,
		Config:               config,
		Sentry:               sentry,
		Cache:                cache,
		UserRepo:             userRepo,
		ProductRepo:          productRepo,
		OrderRepo:            orderRepo,
		Gateway:              gateway,
		IdempotencyGenerator: idempotencyGenerator,
		OrderPublisher:       orderPublisher,
	}
}
