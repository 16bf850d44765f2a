package testutil

import (
	"context"
	"time"

	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/domain/user"
	"github.com/flexprice/storefront/internal/idempotency"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/publisher"
	"github.com/flexprice/storefront/internal/repository/memory"
	"github.com/flexprice/storefront/internal/sentry"
	"github.com/flexprice/storefront/internal/types"
	"github.com/flexprice/storefront/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	UserRepo    user.Repository
	ProductRepo product.Repository
	OrderRepo   order.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites.
// Every test starts with empty user and order stores, the default catalog and a fresh mock gateway.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	stores    Stores
	pubSub    *InMemoryPubSub
	publisher publisher.OrderPublisher
	gateway   *MockGateway
	cache     *cache.InMemoryCache
	sentry    *sentry.Service
	logger    *logger.Logger
	config    *config.Configuration
	generator *idempotency.Generator
	now       time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Cache.Enabled = true

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.sentry = sentry.NewSentryService(cfg, s.logger)
	s.generator = idempotency.NewGenerator()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.now = time.Now().UTC()
	s.setupStores()

	s.cache = cache.NewInMemoryCache(s.config.Cache)
	s.pubSub = NewInMemoryPubSub()
	s.publisher = publisher.NewOrderPublisher(s.pubSub, s.config, s.logger)
	s.gateway = &MockGateway{}
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.gateway.AssertExpectations(s.T())
	_ = s.pubSub.Close()
}

func (s *BaseServiceTestSuite) setupStores() {
	productStore := memory.NewProductStore(s.logger)
	if err := memory.SeedCatalog(s.ctx, productStore, memory.DefaultCatalog()); err != nil {
		s.T().Fatalf("failed to seed catalog: %v", err)
	}

	s.stores = Stores{
		UserRepo:    memory.NewUserStore(s.logger),
		ProductRepo: productStore,
		OrderRepo:   memory.NewOrderStore(s.logger),
	}
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetPubSub() *InMemoryPubSub {
	return s.pubSub
}

func (s *BaseServiceTestSuite) GetPublisher() publisher.OrderPublisher {
	return s.publisher
}

func (s *BaseServiceTestSuite) GetGateway() *MockGateway {
	return s.gateway
}

func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

func (s *BaseServiceTestSuite) GetIdempotencyGenerator() *idempotency.Generator {
	return s.generator
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
