package service

import (
	"context"
	"time"
)

// Delivery event types
const (
	DeliveryEventCreated   = "delivery.created"
	DeliveryEventDelivered = "delivery.delivered"
	DeliveryEventCancelled = "delivery.cancelled"
)

// DeliveryEvent is emitted after a delivery transition has been committed.
type DeliveryEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventType   string    `json:"event_type"`
	DeliveryID  string    `json:"delivery_id"`
	ProductCode string    `json:"product_code"`
	PartnerName string    `json:"partner_name"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"` // e.g. "stale" for sweeper cancellations
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery lifecycle event
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
