package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies external consumers that an order's lifecycle
// state changed. Published after the owning transaction commits; consumers
// must treat it as at-most-once.
type OrderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	ClientID   string    `json:"client_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Publish failures must not fail the originating operation; the state change
// has already committed.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
