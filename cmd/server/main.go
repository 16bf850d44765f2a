package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/storefront/internal/api"
	v1 "github.com/flexprice/storefront/internal/api/v1"
	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/idempotency"
	"github.com/flexprice/storefront/internal/integration"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/publisher"
	pubsubMemory "github.com/flexprice/storefront/internal/pubsub/memory"
	pubsubRouter "github.com/flexprice/storefront/internal/pubsub/router"
	"github.com/flexprice/storefront/internal/repository"
	"github.com/flexprice/storefront/internal/sentry"
	"github.com/flexprice/storefront/internal/service"
	"github.com/flexprice/storefront/internal/types"
	"github.com/flexprice/storefront/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Storefront API
// @version 1.0
// @description Storefront pricing, tax and checkout API
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// PubSub
			pubsubMemory.NewPubSub,
			pubsubRouter.NewRouter,

			// Event Publisher
			publisher.NewOrderPublisher,

			// Repositories
			repository.NewUserRepository,
			repository.NewProductRepository,
			repository.NewOrderRepository,

			// Payments
			integration.NewPaymentGateway,
			idempotency.NewGenerator,
		),
	)

	// Monitoring
	opts = append(opts, sentry.Module())

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewTaxService,
			service.NewPriceService,
			service.NewUserService,
			service.NewCheckoutService,
			service.NewOrderService,
			service.NewOrderEventService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			validator.NewValidator,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	taxService service.TaxService,
	priceService service.PriceService,
	userService service.UserService,
	checkoutService service.CheckoutService,
	orderService service.OrderService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Tax:      v1.NewTaxHandler(taxService, logger),
		Price:    v1.NewPriceHandler(priceService, logger),
		User:     v1.NewUserHandler(userService, orderService, logger),
		Checkout: v1.NewCheckoutHandler(checkoutService, logger),
		Order:    v1.NewOrderHandler(orderService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	router *pubsubRouter.Router,
	orderEventService service.OrderEventService,
	orderPublisher publisher.OrderPublisher,
	log *logger.Logger,
) {
	// registered first so the pubsub closes after the server and router have stopped
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return orderPublisher.Close()
		},
	})

	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startMessageRouter(lc, router, orderEventService, log)
		startAPIServer(lc, r, cfg, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}

func startMessageRouter(
	lc fx.Lifecycle,
	router *pubsubRouter.Router,
	orderEventService service.OrderEventService,
	logger *logger.Logger,
) {
	// Register handlers before starting the router
	orderEventService.RegisterHandler(router)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Errorw("message router failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return router.Close()
		},
	})
}
