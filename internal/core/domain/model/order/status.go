package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the canonical order-level status. It is never stored as
// independent state on the aggregate; it is always derived from the multiset
// of item statuses via DeriveStatus.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means every item on the order is still pending.
	StatusPending

	// StatusInProgress means at least one item is being prepared or is
	// ready, but the order as a whole is not fully ready yet.
	StatusInProgress

	// StatusReady means every item is ready or served, with at least one
	// not yet served. This is the moment the ready-for-service alert fires.
	StatusReady

	// StatusServed means literally every item has been served.
	// Orders in this status leave the active set.
	StatusServed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusReady:      "ready",
		StatusServed:     "served",
	}
}

// Validate checks if the Status value is one of the four derivable states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusServed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
}

// String returns the wire name of the status ("pending", "in_progress",
// "ready", "served"), or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DeriveStatus maps a non-empty item collection to the canonical order
// status. The precedence is exact and order-independent:
//
//  1. every item served            -> StatusServed
//  2. every item ready or served   -> StatusReady
//  3. any item preparing or ready  -> StatusInProgress
//  4. otherwise (all pending)      -> StatusPending
//
// Rule 2 intentionally keeps an order at "ready" while any item served from
// an earlier batch coexists with ready items; the order only becomes
// "served" when literally every item is served.
//
// An empty collection is a programming-contract violation and returns
// ErrEmptyOrder.
func DeriveStatus(items []*Item) (Status, error) {
	if len(items) == 0 {
		return StatusUnknown, ErrEmptyOrder
	}

	allServed := true
	allReadyOrServed := true
	anyActive := false

	for _, item := range items {
		switch item.Status() {
		case Served:
		case Ready:
			allServed = false
			anyActive = true
		case Preparing:
			allServed = false
			allReadyOrServed = false
			anyActive = true
		default:
			allServed = false
			allReadyOrServed = false
		}
	}

	switch {
	case allServed:
		return StatusServed, nil
	case allReadyOrServed:
		return StatusReady, nil
	case anyActive:
		return StatusInProgress, nil
	default:
		return StatusPending, nil
	}
}
