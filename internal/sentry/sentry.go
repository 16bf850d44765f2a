package sentry

import (
	"context"
	"time"

	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

type Service struct {
	cfg    *config.Configuration
	logger *logger.Logger
}

// Module provides fx options for Sentry
func Module() fx.Option {
	return fx.Options(
		fx.Provide(NewSentryService),
		fx.Invoke(RegisterHooks),
	)
}

// RegisterHooks initialises the sentry client on start and flushes it on stop
func RegisterHooks(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !svc.cfg.Sentry.Enabled {
				svc.logger.Info("Sentry is disabled")
				return nil
			}

			err := sentry.Init(sentry.ClientOptions{
				Dsn:              svc.cfg.Sentry.DSN,
				Environment:      svc.cfg.Sentry.Environment,
				EnableTracing:    true,
				TracesSampleRate: svc.cfg.Sentry.SampleRate,
				TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
					if ctx.Span.Name == "GET /health" {
						return 0.0
					}
					return svc.cfg.Sentry.SampleRate
				}),
			})
			if err != nil {
				svc.logger.Errorw("failed to initialize Sentry", "error", err)
				return err
			}
			svc.logger.Infow("Sentry initialized successfully",
				"environment", svc.cfg.Sentry.Environment,
				"sample_rate", svc.cfg.Sentry.SampleRate,
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if svc.cfg.Sentry.Enabled {
				svc.logger.Info("Flushing Sentry events before shutdown")
				sentry.Flush(2 * time.Second)
			}
			return nil
		},
	})
}

// NewSentryService creates a new Sentry service
func NewSentryService(cfg *config.Configuration, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether events are sent to sentry
func (s *Service) Enabled() bool {
	return s != nil && s.cfg.Sentry.Enabled
}

// CaptureException captures an error in Sentry
func (s *Service) CaptureException(err error) {
	if !s.Enabled() {
		return
	}
	sentry.CaptureException(err)
}

// AddBreadcrumb adds a breadcrumb to the current scope
func (s *Service) AddBreadcrumb(category, message string, data map[string]interface{}) {
	if !s.Enabled() {
		return
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: category,
		Message:  message,
		Level:    sentry.LevelInfo,
		Data:     data,
	})
}

// Flush waits for queued events to be sent
func (s *Service) Flush(timeout time.Duration) bool {
	if !s.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}

// StartPaymentSpan starts a span around a call to the payment provider
func (s *Service) StartPaymentSpan(ctx context.Context, operation string, params map[string]interface{}) (*sentry.Span, context.Context) {
	if !s.Enabled() {
		return nil, ctx
	}

	span := sentry.StartSpan(ctx, "payment."+operation)
	span.Description = operation
	span.Op = "http.client.payment"
	for k, v := range params {
		span.SetData(k, v)
	}

	return span, span.Context()
}

// MonitorEventProcessing tracks consumption of an order event, including its delivery lag
func (s *Service) MonitorEventProcessing(ctx context.Context, eventName string, eventTimestamp time.Time, metadata map[string]interface{}) (*sentry.Span, context.Context) {
	if !s.Enabled() {
		return nil, ctx
	}

	span := sentry.StartSpan(ctx, "event.process")
	span.Description = "Processing " + eventName
	span.Op = "event.process"
	span.SetData("event_name", eventName)
	span.SetData("lag_ms", time.Since(eventTimestamp).Milliseconds())
	for k, v := range metadata {
		span.SetData(k, v)
	}

	return span, span.Context()
}
