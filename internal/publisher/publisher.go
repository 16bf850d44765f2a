package publisher

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/order"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/pubsub"
)

// OrderPublisher publishes checkout events
type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event *order.Event) error
	Close() error
}

type orderPublisher struct {
	pubSub pubsub.PubSub
	topic  string
	logger *logger.Logger
}

// NewOrderPublisher creates a publisher writing to the configured checkout topic
func NewOrderPublisher(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	logger *logger.Logger,
) OrderPublisher {
	return &orderPublisher{
		pubSub: pubSub,
		topic:  cfg.Checkout.EventTopic,
		logger: logger,
	}
}

func (p *orderPublisher) PublishOrderEvent(ctx context.Context, event *order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode order event").
			Mark(ierr.ErrSystem)
	}

	messageID := event.ID
	if messageID == "" {
		messageID = watermill.NewUUID()
	}

	msg := message.NewMessage(messageID, payload)
	msg.Metadata.Set("event_name", event.EventName)
	msg.Metadata.Set("order_id", event.OrderID)
	msg.Metadata.Set("country", event.Country)

	p.logger.Debugw("publishing order event",
		"event_id", event.ID,
		"event_name", event.EventName,
		"order_id", event.OrderID,
		"topic", p.topic,
	)

	if err := p.pubSub.Publish(ctx, p.topic, msg); err != nil {
		p.logger.Errorw("failed to publish order event",
			"error", err,
			"event_id", event.ID,
			"order_id", event.OrderID,
		)
		return ierr.WithError(err).
			WithHint("Failed to publish order event").
			Mark(ierr.ErrSystem)
	}

	return nil
}

// Close closes the publisher
func (p *orderPublisher) Close() error {
	return p.pubSub.Close()
}
