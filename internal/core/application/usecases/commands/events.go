package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// publishOrderChanged emits a lifecycle event for the order's current status.
// Called only after the owning transaction has committed; the state change is
// durable, so a failed publish is dropped rather than surfaced to the caller.
func publishOrderChanged(ctx context.Context, publisher ports.OrderEventPublisher, o *order.Order) {
	if publisher == nil {
		return
	}

	_ = publisher.PublishOrderChanged(ctx, ports.OrderChangedEvent{
		OrderID:    o.ID().String(),
		ClientID:   o.ClientID().String(),
		Status:     o.Status().String(),
		OccurredAt: time.Now(),
	})
}
