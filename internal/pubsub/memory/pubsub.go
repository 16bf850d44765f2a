package memory

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/pubsub"
	"github.com/flexprice/storefront/internal/types"
)

// PubSub implements both Publisher and Subscriber interfaces using watermill's gochannel
type PubSub struct {
	pubsub *gochannel.GoChannel
	logger *logger.Logger
}

// NewPubSub creates a new memory-based pubsub
func NewPubSub(
	cfg *config.Configuration,
	logger *logger.Logger,
) pubsub.PubSub {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{
			// order events are informational; nothing is replayed to late subscribers
			Persistent:                     false,
			BlockPublishUntilSubscriberAck: false,
			OutputChannelBuffer:            100,
		},
		watermill.NewStdLogger(cfg.Logging.Level == types.LogLevelDebug, false),
	)

	return &PubSub{
		pubsub: goChannel,
		logger: logger,
	}
}

// Publish publishes a message to a topic
func (p *PubSub) Publish(ctx context.Context, topic string, msg *message.Message) error {
	msg.SetContext(ctx)
	return p.pubsub.Publish(topic, msg)
}

// Subscribe starts consuming messages from a topic
func (p *PubSub) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return p.pubsub.Subscribe(ctx, topic)
}

// Close closes both publisher and subscriber
func (p *PubSub) Close() error {
	p.logger.Debug("closing in-memory pubsub")
	return p.pubsub.Close()
}
