package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/pubsub"
	pubsubRouter "github.com/flexprice/storefront/internal/pubsub/router"
)

const orderEventsHandlerName = "order_events_logger"

// OrderEventService consumes checkout events from the order topic
type OrderEventService interface {
	RegisterHandler(router *pubsubRouter.Router)
}

type orderEventService struct {
	ServiceParams
	pubSub pubsub.PubSub
}

func NewOrderEventService(params ServiceParams, pubSub pubsub.PubSub) OrderEventService {
	return &orderEventService{
		ServiceParams: params,
		pubSub:        pubSub,
	}
}

// RegisterHandler subscribes the order event logger to the checkout topic
func (s *orderEventService) RegisterHandler(router *pubsubRouter.Router) {
	router.AddNoPublishHandler(
		orderEventsHandlerName,
		s.Config.Checkout.EventTopic,
		s.pubSub,
		s.processMessage,
	)

	s.Logger.Infow("registered order event handler",
		"handler", orderEventsHandlerName,
		"topic", s.Config.Checkout.EventTopic,
	)
}

func (s *orderEventService) processMessage(msg *message.Message) error {
	var event order.Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.Logger.Errorw("failed to unmarshal order event",
			"error", err,
			"message_uuid", msg.UUID,
		)
		return nil // Don't retry on unmarshal errors
	}

	return s.processEvent(context.Background(), &event)
}

func (s *orderEventService) processEvent(ctx context.Context, event *order.Event) error {
	span, ctx := s.Sentry.MonitorEventProcessing(ctx, event.EventName, event.Timestamp, map[string]interface{}{
		"order_id": event.OrderID,
		"country":  event.Country,
	})
	if span != nil {
		defer span.Finish()
	}

	// the order is stored before the event is published, a miss means the store is behind
	if _, err := s.OrderRepo.Get(ctx, event.OrderID); err != nil {
		s.Logger.Errorw("order event references unknown order",
			"error", err,
			"event_id", event.ID,
			"order_id", event.OrderID,
		)
		return err
	}

	s.Logger.Infow("order event received",
		"event_id", event.ID,
		"event_name", event.EventName,
		"order_id", event.OrderID,
		"order_number", event.OrderNumber,
		"country", event.Country,
		"currency", event.Currency,
		"base_amount", event.BaseAmount,
		"tax_amount", event.TaxAmount,
		"total_amount", event.TotalAmount,
		"payment_intent_id", event.PaymentIntentID,
	)

	s.Sentry.AddBreadcrumb("order", event.EventName, map[string]interface{}{
		"order_id": event.OrderID,
		"country":  event.Country,
		"total":    event.TotalAmount,
	})

	return nil
}
