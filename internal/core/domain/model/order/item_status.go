package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// ItemStatus represents the preparation lifecycle state of a single order
// item. It implements a strictly forward state machine:
//
//	pending ──> preparing ──> ready ──> served
//
// Only single-step forward transitions are legal. Requesting the current
// status again is an idempotent no-op (a duplicate tap on a station
// terminal); requesting anything else is an invalid transition. The engine
// never regresses an item's status.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ItemStatus values.
	ItemStatusUnknown ItemStatus = iota

	// Pending is the initial status of every item when the order is placed.
	Pending

	// Preparing indicates a cook has started working on the item.
	Preparing

	// Ready indicates the item is finished and waiting to be picked up.
	Ready

	// Served indicates the item has been delivered to the guest.
	// This is a final state with no further transitions.
	Served
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "unknown",
		Pending:           "pending",
		Preparing:         "preparing",
		Ready:             "ready",
		Served:            "served",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
	}
}

// Validate checks if the ItemStatus value is one of the four lifecycle
// states. ItemStatusUnknown (0) and any other values are invalid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "preparing",
// "ready", "served"), or "unknown" for invalid values. Implements
// fmt.Stringer and is safe to call on any ItemStatus value.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the single legal forward step from this status. The second
// return value is false for Served (terminal) and for invalid statuses.
func (s ItemStatus) Next() (ItemStatus, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Served, true
	default:
		return ItemStatusUnknown, false
	}
}

// CanAdvanceTo reports whether a transition request to target is legal from
// this status: either target equals the current status (idempotent replay)
// or target is the next single-step forward state. Skips such as
// pending -> served are never legal.
func (s ItemStatus) CanAdvanceTo(target ItemStatus) bool {
	if target.Validate() != nil {
		return false
	}
	if target == s {
		return true
	}
	next, ok := s.Next()
	return ok && target == next
}
