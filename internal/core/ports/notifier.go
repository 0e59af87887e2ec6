package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
)

// ReadyAlert is the payload handed to the notification sink when an order
// arrives at canonical ready status: who to alert and where the order is
// going.
type ReadyAlert struct {
	OrderID kernel.UUID
	StaffID kernel.UUID

	// Location is a human-readable descriptor: the table label for dine-in
	// checks, otherwise the fulfillment type.
	Location string
}

// ReadyNotifier delivers ready-for-service alerts to staff. Delivery is
// fire-and-forget: the engine's obligation ends once the alert is handed
// off, and a delivery failure never rolls back or blocks the state
// transition that produced it. Callers log the error and drop it.
type ReadyNotifier interface {
	NotifyReady(ctx context.Context, alert ReadyAlert) error
}
