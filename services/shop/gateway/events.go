package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/coffeeshop/internal/pkg/constants"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/services/shop"
)

// EventPublisher is satisfied by *nsq.Producer
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}

type eventGW struct {
	producer EventPublisher
	topic    string
}

// NewEventGW creates a gateway publishing shop events to topic. A nil
// producer yields a gateway that drops every event.
func NewEventGW(producer EventPublisher, topic string) shop.EventGW {
	if producer == nil {
		return noopEventGW{}
	}
	if topic == "" {
		topic = constants.DefaultShopEventsTopic
	}
	return &eventGW{
		producer: producer,
		topic:    topic,
	}
}

// PublishShopEvent publishes a shop change event to NSQ
func (g *eventGW) PublishShopEvent(ctx context.Context, event models.ShopEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.producer.Publish(g.topic, event); err != nil {
		return fmt.Errorf("failed to publish %s event for shop %d: %w", event.Type, event.ShopID, err)
	}
	return nil
}

type noopEventGW struct{}

func (noopEventGW) PublishShopEvent(context.Context, models.ShopEvent) error {
	return nil
}
