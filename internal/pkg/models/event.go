package models

import "time"

// ShopEventType names a registry mutation
type ShopEventType string

const (
	ShopCreated ShopEventType = "created"
	ShopUpdated ShopEventType = "updated"
	ShopDeleted ShopEventType = "deleted"
)

// ShopEvent is published after a successful mutation
type ShopEvent struct {
	Type       ShopEventType `json:"type"`
	ShopID     int           `json:"shop_id"`
	Shop       *Shop         `json:"shop,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewShopEvent builds an event stamped with the current time
func NewShopEvent(eventType ShopEventType, shopID int, shop *Shop) ShopEvent {
	return ShopEvent{
		Type:       eventType,
		ShopID:     shopID,
		Shop:       shop,
		OccurredAt: Now(),
	}
}
