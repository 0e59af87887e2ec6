package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a guest check in the kitchen engine. It
// exclusively owns the mutation of its items: station terminals and
// front-of-house edits go through the aggregate's methods, never through
// direct item manipulation.
//
// Order maintains these invariants:
//   - must have valid order, location and staff identifiers
//   - holds an ordered, non-empty sequence of items
//   - item transitions are all-or-none per request
//   - the canonical status is always derived from the items, never stored
//     as independent state on the aggregate
//
// Items are never deleted while the order is active; "removed" items are a
// front-of-house edit outside this engine's scope.
type Order struct {
	// id identifies the guest check
	id kernel.UUID

	// locationID identifies the restaurant location the check belongs to
	locationID kernel.UUID

	// fulfillment is how the check is fulfilled (dine-in, takeout, delivery)
	fulfillment Fulfillment

	// tableLabel is the table for dine-in checks (nil otherwise)
	tableLabel *string

	// staffID references the staff member who owns the check
	staffID kernel.UUID

	// createdAt is when the check was opened
	createdAt time.Time

	// items is the ordered sequence of order items
	items []*Item

	// edited marks that the order was modified after placement
	edited bool

	// readyAlerted records that the ready-for-service alert already fired
	// for the current arrival at the ready status
	readyAlerted bool

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with its initial items. Every item of a
// freshly placed order enters at Pending; an order without items is
// rejected because status derivation is undefined for it.
func NewOrder(
	id kernel.UUID,
	locationID kernel.UUID,
	fulfillment Fulfillment,
	tableLabel *string,
	staffID kernel.UUID,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		tableLabel:    tableLabel,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocationID(locationID),
		o.setFulfillment(fulfillment),
		o.setStaffID(staffID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including the edit
// and alert bookkeeping flags.
func RestoreOrder(
	id kernel.UUID,
	locationID kernel.UUID,
	fulfillment Fulfillment,
	tableLabel *string,
	staffID kernel.UUID,
	createdAt time.Time,
	items []*Item,
	edited bool,
	readyAlerted bool,
) (*Order, error) {
	o, err := NewOrder(id, locationID, fulfillment, tableLabel, staffID, createdAt, items)
	if err != nil {
		return nil, err
	}

	o.edited = edited
	o.readyAlerted = readyAlerted
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// LocationID returns the restaurant location the order belongs to.
func (o *Order) LocationID() kernel.UUID {
	return o.locationID
}

// Fulfillment returns how the check is fulfilled.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// TableLabel returns the table label for dine-in checks, or nil.
func (o *Order) TableLabel() *string {
	return o.tableLabel
}

// StaffID returns the owning staff member reference.
func (o *Order) StaffID() kernel.UUID {
	return o.staffID
}

// CreatedAt returns when the check was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the ordered item sequence. The slice is a copy; the items
// themselves are the aggregate's entities and must only be mutated through
// the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the item with the given identifier, if present.
func (o *Order) Item(id kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// Edited reports whether the order was modified after placement.
func (o *Order) Edited() bool {
	return o.edited
}

// ReadyAlerted reports whether the ready-for-service alert already fired
// for the current arrival at StatusReady.
func (o *Order) ReadyAlerted() bool {
	return o.readyAlerted
}

// Status derives the canonical order status from the current items.
func (o *Order) Status() (Status, error) {
	return DeriveStatus(o.items)
}

// LocationDescriptor returns a human-readable descriptor for alerts: the
// table label when present, otherwise the fulfillment type.
func (o *Order) LocationDescriptor() string {
	if o.tableLabel != nil && *o.tableLabel != "" {
		return fmt.Sprintf("table %s", *o.tableLabel)
	}
	return o.fulfillment.String()
}

// AppendItems accepts an out-of-band front-of-house edit: new items enter
// at Pending, the order is marked edited and the ready alert is re-armed
// because a new pending item takes the canonical status out of ready.
func (o *Order) AppendItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, exists := o.Item(item.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"item id is already present",
				fmt.Errorf("item %s already exists on order %s", item.ID(), o.id),
			)
		}
	}

	o.items = append(o.items, items...)
	o.edited = true
	o.readyAlerted = false
	return nil
}

// TransitionItems advances every referenced item to target, atomically for
// the whole set: the request is validated against each item first, and only
// applied when every single transition is legal. If any item's current
// status makes the requested step illegal the whole call fails with an
// InvalidTransitionError naming the offending item and no item changes.
func (o *Order) TransitionItems(itemIDs []kernel.UUID, target ItemStatus, now time.Time) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("itemIds")
	}
	if err := target.Validate(); err != nil {
		return err
	}

	items := make([]*Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, ok := o.Item(id)
		if !ok {
			return errs.NewObjectNotFoundError("itemId", id.String())
		}
		if !item.Status().CanAdvanceTo(target) {
			return NewInvalidTransitionError(item.ID(), item.Status(), target)
		}
		items = append(items, item)
	}

	// Validation passed for the whole set; Advance cannot fail below.
	for _, item := range items {
		_ = item.Advance(target, now)
	}
	return nil
}

// TransitionItem advances a single item. Equivalent to a one-element
// TransitionItems call.
func (o *Order) TransitionItem(itemID kernel.UUID, target ItemStatus, now time.Time) error {
	return o.TransitionItems([]kernel.UUID{itemID}, target, now)
}

// MarkReadyAlerted records that the ready-for-service alert has been handed
// off for the current arrival at StatusReady, so it fires at most once per
// arrival.
func (o *Order) MarkReadyAlerted() {
	o.readyAlerted = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	o.locationID = locationID
	return nil
}

func (o *Order) setFulfillment(fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}

func (o *Order) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	o.staffID = staffID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
