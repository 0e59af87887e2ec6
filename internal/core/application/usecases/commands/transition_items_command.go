package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrTransitionItemsCommandIsNotConstructed = errors.New(
	"TransitionItemsCommand must be created via NewTransitionItemsCommand constructor",
)

// TransitionItemsCommand represents a station terminal's request to advance
// a set of an order's items to a target preparation status. The set is
// atomic: either every referenced item moves or none does.
//
// Example:
//
//	cmd, err := NewTransitionItemsCommand(orderID, itemIDs, order.Ready)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionItemsCommandHandler(uowFactory, notifier, publisher, logger)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // another terminal moved one of the items first
//	}
type TransitionItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemIDs []kernel.UUID
	target  order.ItemStatus

	guard guard.ConstructorGuard
}

// NewTransitionItemsCommand creates a command to advance order items.
func NewTransitionItemsCommand(orderID kernel.UUID, itemIDs []kernel.UUID, target order.ItemStatus) (TransitionItemsCommand, error) {
	cmd := TransitionItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setTarget(target),
	); err != nil {
		return TransitionItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionItemsCommand) Validate() error {
	return c.guard.Validate(ErrTransitionItemsCommandIsNotConstructed)
}

// OrderID returns the order whose items are being advanced.
func (c TransitionItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIDs returns the items to advance.
func (c TransitionItemsCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// Target returns the requested preparation status.
func (c TransitionItemsCommand) Target() order.ItemStatus {
	return c.target
}

func (c *TransitionItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("itemIds")
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *TransitionItemsCommand) setTarget(target order.ItemStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
