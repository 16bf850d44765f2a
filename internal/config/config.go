package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flexprice/storefront/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging" validate:"required"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	Stripe     StripeConfig     `mapstructure:"stripe"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Checkout   CheckoutConfig   `mapstructure:"checkout" validate:"required"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required,oneof=local api"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// StripeConfig holds the payment provider credentials.
// An empty secret key switches checkout to the local gateway.
type StripeConfig struct {
	SecretKey      string `mapstructure:"secret_key"`
	PublishableKey string `mapstructure:"publishable_key"`
}

type CacheConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type CheckoutConfig struct {
	// IdempotencyTTL is how long a payment intent response is replayed for a repeated key
	IdempotencyTTL time.Duration    `mapstructure:"idempotency_ttl" validate:"required"`
	EventTopic     string           `mapstructure:"event_topic" validate:"required"`
	PubSub         types.PubSubType `mapstructure:"pubsub" validate:"required,oneof=memory"`
	MaxRetries     int              `mapstructure:"max_retries" validate:"gte=0"`
}

type CatalogConfig struct {
	// Seed loads the demo product catalog into the in-memory store on startup
	Seed bool `mapstructure:"seed"`
}

// RateLimitConfig limits requests per client IP on public endpoints.
// Rate uses the limiter format "<limit>-<period>", e.g. "120-M".
type RateLimitConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Rate    string `mapstructure:"rate" validate:"required_if=Enabled true"`
}

func NewConfig() (*Configuration, error) {
	// a missing .env is expected outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront")

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it without a config file
func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()

	v.SetDefault("deployment.mode", defaults.Deployment.Mode)
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("sentry.enabled", defaults.Sentry.Enabled)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", defaults.Sentry.Environment)
	v.SetDefault("sentry.sample_rate", defaults.Sentry.SampleRate)
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.publishable_key", "")
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.default_expiration", defaults.Cache.DefaultExpiration)
	v.SetDefault("cache.cleanup_interval", defaults.Cache.CleanupInterval)
	v.SetDefault("checkout.idempotency_ttl", defaults.Checkout.IdempotencyTTL)
	v.SetDefault("checkout.event_topic", defaults.Checkout.EventTopic)
	v.SetDefault("checkout.pubsub", defaults.Checkout.PubSub)
	v.SetDefault("checkout.max_retries", defaults.Checkout.MaxRetries)
	v.SetDefault("catalog.seed", defaults.Catalog.Seed)
	v.SetDefault("rate_limit.enabled", defaults.RateLimit.Enabled)
	v.SetDefault("rate_limit.rate", defaults.RateLimit.Rate)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or other non-web applications.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Sentry: SentryConfig{
			Environment: "local",
			SampleRate:  1.0,
		},
		Cache: CacheConfig{
			Enabled:           true,
			DefaultExpiration: 30 * time.Minute,
			CleanupInterval:   time.Hour,
		},
		Checkout: CheckoutConfig{
			IdempotencyTTL: 24 * time.Hour,
			EventTopic:     "order_events",
			PubSub:         types.MemoryPubSub,
			MaxRetries:     3,
		},
		Catalog: CatalogConfig{Seed: true},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Rate:    "120-M",
		},
	}
}

// UseLocalGateway reports whether checkout should skip the payment provider
func (c StripeConfig) UseLocalGateway() bool {
	return strings.TrimSpace(c.SecretKey) == ""
}
