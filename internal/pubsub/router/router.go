package router

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/sentry"
)

const poisonTopic = "order_events_dlq"

// Router manages all message routing
type Router struct {
	router *message.Router
	logger *logger.Logger
	sentry *sentry.Service
}

// NewRouter creates a new message router
func NewRouter(cfg *config.Configuration, logger *logger.Logger, sentry *sentry.Service) (*Router, error) {
	router, err := message.NewRouter(
		message.RouterConfig{
			CloseTimeout: 5 * time.Second,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(newPoisonQueue(), poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		poisonQueue,
		middleware.Recoverer,
		middleware.CorrelationID,
		middleware.Retry{
			MaxRetries:          cfg.Checkout.MaxRetries,
			InitialInterval:     100 * time.Millisecond,
			MaxInterval:         2 * time.Second,
			Multiplier:          2,
			MaxElapsedTime:      10 * time.Second,
			RandomizationFactor: 0.5,
			Logger:              watermill.NewStdLogger(false, false),
			OnRetryHook: func(retryNum int, delay time.Duration) {
				logger.Infow("retrying message",
					"retry_number", retryNum,
					"max_retries", cfg.Checkout.MaxRetries,
					"delay", delay,
				)
			},
		}.Middleware,
	)

	return &Router{
		router: router,
		logger: logger,
		sentry: sentry,
	}, nil
}

// AddNoPublishHandler adds a handler that consumes without publishing onwards.
// Handler failures are reported to sentry before the retry middleware sees them.
func (r *Router) AddNoPublishHandler(
	handlerName string,
	topicName string,
	subscriber message.Subscriber,
	handlerFunc func(msg *message.Message) error,
) {
	r.router.AddNoPublisherHandler(
		handlerName,
		topicName,
		subscriber,
		func(msg *message.Message) error {
			err := handlerFunc(msg)
			if err != nil {
				r.sentry.CaptureException(err)
				r.logger.Errorw("handler failed",
					"handler", handlerName,
					"error", err,
					"correlation_id", middleware.MessageCorrelationID(msg),
					"message_uuid", msg.UUID,
				)
			}
			return err
		},
	)
}

// Run starts the router and blocks until ctx is cancelled or Close is called
func (r *Router) Run(ctx context.Context) error {
	r.logger.Info("starting message router")
	return r.router.Run(ctx)
}

// Running is closed once all handlers are subscribed
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// Close gracefully shuts down the router
func (r *Router) Close() error {
	r.logger.Info("closing message router")
	return r.router.Close()
}

// newPoisonQueue returns an in-process sink for messages that exhausted their retries
func newPoisonQueue() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{
			Persistent: false,
		},
		watermill.NewStdLogger(false, false),
	)
}
