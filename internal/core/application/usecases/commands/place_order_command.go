package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to register a new guest check with
// its initial item lines. Every item enters the kitchen at pending status.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(orderID, locationID, order.DineIn, &table, staffID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	locationID  kernel.UUID
	fulfillment order.Fulfillment
	tableLabel  *string
	staffID     kernel.UUID
	items       []*order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. The item
// specs are turned into domain items here, so an invalid line (empty name,
// non-positive quantity) rejects the whole command before any transaction
// starts.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	fulfillment order.Fulfillment,
	tableLabel *string,
	staffID kernel.UUID,
	items []ItemSpec,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		tableLabel: tableLabel,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setFulfillment(fulfillment),
		cmd.setStaffID(staffID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the restaurant location the order belongs to.
func (c PlaceOrderCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Fulfillment returns how the check is fulfilled.
func (c PlaceOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

// TableLabel returns the table label for dine-in checks, or nil.
func (c PlaceOrderCommand) TableLabel() *string {
	return c.tableLabel
}

// StaffID returns the staff member who owns the check.
func (c PlaceOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Items returns the constructed item lines.
func (c PlaceOrderCommand) Items() []*order.Item {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(fulfillment order.Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	c.fulfillment = fulfillment
	return nil
}

func (c *PlaceOrderCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	c.staffID = staffID
	return nil
}

func (c *PlaceOrderCommand) setItems(specs []ItemSpec) error {
	if len(specs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	items, err := newItemsFromSpecs(specs)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}
