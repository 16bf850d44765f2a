package api

import (
	v1 "github.com/flexprice/storefront/internal/api/v1"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/rest/middleware"
	"github.com/flexprice/storefront/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Tax      *v1.TaxHandler
	Price    *v1.PriceHandler
	User     *v1.UserHandler
	Checkout *v1.CheckoutHandler
	Order    *v1.OrderHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) (*gin.Engine, error) {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimit, err := middleware.RateLimitMiddleware(cfg, logger)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)
	router.POST("/health", handlers.Health.Health)

	// debug endpoint consumed by the storefront frontend
	router.GET("/tax/calculate", rateLimit, handlers.Tax.Calculate)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, rateLimit)

	return router, nil
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, rateLimit gin.HandlerFunc) {
	tax := router.Group("/tax")
	{
		tax.GET("/calculate", rateLimit, handlers.Tax.Calculate)
		tax.GET("/rates", handlers.Tax.ListRates)
		tax.GET("/countries/:country", handlers.Tax.GetCountryInfo)
	}

	products := router.Group("/products")
	{
		products.GET("", handlers.Price.ListProductPrices)
		products.GET("/:id/price", handlers.Price.GetProductPrice)
	}

	users := router.Group("/users")
	{
		users.POST("", handlers.User.Register)
		users.GET("/:id", handlers.User.Get)
		users.GET("/:id/orders", handlers.User.ListOrders)
		users.GET("/:id/tax", handlers.Tax.CalculateForUser)
	}

	checkout := router.Group("/checkout", rateLimit)
	{
		checkout.POST("/preview", handlers.Checkout.Preview)
		checkout.POST("/payment-intent", handlers.Checkout.CreatePaymentIntent)
	}

	orders := router.Group("/orders")
	{
		orders.GET("/:id", handlers.Order.Get)
	}
}
