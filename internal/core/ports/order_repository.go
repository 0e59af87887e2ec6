package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Implementations must store items as individually addressable rows and
// serialize concurrent transitions per order (row-level locking or
// equivalent); a whole-collection read-modify-write of the item list is
// not an acceptable implementation because it loses concurrent updates.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the
	// recomputed canonical status, the bookkeeping flags and the state of
	// each item row. Item rows are written individually, never as a
	// collection overwrite.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with its
	// complete ordered item sequence. Inside a unit of work the order row
	// is locked for update so concurrent transitions on the same order are
	// serialized.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves the location's active set: every order whose
	// canonical status has not reached served.
	GetAllActive(ctx context.Context, locationID kernel.UUID) ([]*order.Order, error)

	// DeleteServedBefore removes fully served orders that left the active
	// set before the cutoff, returning the number of orders purged. Used
	// by the archival job to keep the system-of-record view bounded.
	DeleteServedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
