package order

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
)

// ErrEmptyOrder is returned when status derivation is invoked on an order
// with zero items. This is a contract violation by the caller, not a
// user-facing condition: the engine never constructs an itemless order.
var ErrEmptyOrder = errors.New("order has no items")

// ErrInvalidTransition is the sentinel for InvalidTransitionError, enabling
// errors.Is classification at the API boundary.
var ErrInvalidTransition = errors.New("invalid item transition")

// InvalidTransitionError reports a state change request that is not the
// legal next step for an item. For bulk calls the whole request is rejected
// and the first offending item is named.
type InvalidTransitionError struct {
	ItemID kernel.UUID
	From   ItemStatus
	To     ItemStatus
}

// NewInvalidTransitionError creates an InvalidTransitionError naming the
// offending item and the rejected step.
func NewInvalidTransitionError(itemID kernel.UUID, from, to ItemStatus) *InvalidTransitionError {
	return &InvalidTransitionError{ItemID: itemID, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: item %s cannot move from %s to %s", ErrInvalidTransition, e.ItemID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
