package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is the unit the engine actually schedules: one line of a guest check
// routed to a preparation station.
//
// Item maintains these invariants:
//   - identifier is valid and stable across front-of-house edits
//   - quantity is positive
//   - status follows the forward-only state machine of ItemStatus
//   - startedAt, readyAt and servedAt are each set at most once, the first
//     time the item enters the corresponding status, and never cleared; the
//     timestamps are monotonically non-decreasing and consistent with the
//     status order
//
// menuItemID is nil for custom/ad-hoc items, which makes the item
// unroutable and subject to the default-station fallback rule.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// menuItemID references the menu item this line was ordered from
	// (nil for ad-hoc items)
	menuItemID *kernel.UUID

	// name is the display name shown on station terminals
	name string

	// quantity is the ordered amount (must be positive)
	quantity int

	// notes carries free-text preparation instructions (nil if none)
	notes *string

	// seat is the guest seat number the item belongs to (nil if untracked)
	seat *int

	// status is the current preparation lifecycle state
	status ItemStatus

	// startedAt, readyAt and servedAt record the first entry into the
	// corresponding status
	startedAt *time.Time
	readyAt   *time.Time
	servedAt  *time.Time

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new order item in Pending status. This is the only way
// to create a valid Item for a freshly placed or edited order.
func NewItem(id kernel.UUID, menuItemID *kernel.UUID, name string, quantity int, notes *string, seat *int) (*Item, error) {
	item := &Item{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.notes = notes
	item.seat = seat
	return item, nil
}

// RestoreItem reconstructs an item from persistence with its full lifecycle
// state. The status must be valid and the timestamps must be consistent
// with it: an item cannot hold a later timestamp without having passed
// through the status that sets the earlier one.
func RestoreItem(
	id kernel.UUID,
	menuItemID *kernel.UUID,
	name string,
	quantity int,
	notes *string,
	seat *int,
	status ItemStatus,
	startedAt, readyAt, servedAt *time.Time,
) (*Item, error) {
	item, err := NewItem(id, menuItemID, name, quantity, notes, seat)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = validateTimestamps(status, startedAt, readyAt, servedAt); err != nil {
		return nil, err
	}

	item.status = status
	item.startedAt = startedAt
	item.readyAt = readyAt
	item.servedAt = servedAt
	return item, nil
}

func validateTimestamps(status ItemStatus, startedAt, readyAt, servedAt *time.Time) error {
	if servedAt != nil && readyAt == nil || readyAt != nil && startedAt == nil {
		return errs.NewValueIsInvalidError("item timestamps are inconsistent with lifecycle order")
	}
	if status >= Preparing && startedAt == nil ||
		status >= Ready && readyAt == nil ||
		status >= Served && servedAt == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"item timestamps are inconsistent with status",
			fmt.Errorf("status %s requires its entry timestamp", status),
		)
	}
	return nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item, or nil for ad-hoc items.
func (i *Item) MenuItemID() *kernel.UUID {
	return i.menuItemID
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered amount.
func (i *Item) Quantity() int {
	return i.quantity
}

// Notes returns the free-text preparation notes, or nil.
func (i *Item) Notes() *string {
	return i.notes
}

// Seat returns the guest seat number, or nil.
func (i *Item) Seat() *int {
	return i.seat
}

// Status returns the current preparation status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// StartedAt returns when the item first entered Preparing, or nil.
func (i *Item) StartedAt() *time.Time {
	return i.startedAt
}

// ReadyAt returns when the item first entered Ready, or nil.
func (i *Item) ReadyAt() *time.Time {
	return i.readyAt
}

// ServedAt returns when the item first entered Served, or nil.
func (i *Item) ServedAt() *time.Time {
	return i.servedAt
}

// Advance moves the item to target if the request is legal.
//
// A request for the current status is an idempotent no-op: a late duplicate
// from a second terminal observes the item already in its target state,
// returns success and leaves all timestamps untouched. A request for the
// next forward state applies the transition and sets the corresponding
// timestamp if and only if it is currently unset. Any other request returns
// an InvalidTransitionError and leaves the item unchanged.
func (i *Item) Advance(target ItemStatus, now time.Time) error {
	if target == i.status {
		return nil
	}

	if !i.status.CanAdvanceTo(target) {
		return NewInvalidTransitionError(i.id, i.status, target)
	}

	i.status = target
	switch target {
	case Preparing:
		if i.startedAt == nil {
			i.startedAt = &now
		}
	case Ready:
		if i.readyAt == nil {
			i.readyAt = &now
		}
	case Served:
		if i.servedAt == nil {
			i.servedAt = &now
		}
	}
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID *kernel.UUID) error {
	if menuItemID != nil {
		if err := menuItemID.Validate(); err != nil {
			return err
		}
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
