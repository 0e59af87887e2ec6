package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrAppendItemsCommandIsNotConstructed = errors.New(
	"AppendItemsCommand must be created via NewAppendItemsCommand constructor",
)

// AppendItemsCommand represents an out-of-band front-of-house edit that adds
// item lines to an already placed order. The new items enter at pending,
// which can pull an order that was fully ready back to in-progress and
// re-arms the ready alert.
type AppendItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []*order.Item

	guard guard.ConstructorGuard
}

// NewAppendItemsCommand creates a command to append items to an order.
func NewAppendItemsCommand(orderID kernel.UUID, items []ItemSpec) (AppendItemsCommand, error) {
	cmd := AppendItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return AppendItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendItemsCommand) Validate() error {
	return c.guard.Validate(ErrAppendItemsCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c AppendItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the constructed item lines to append.
func (c AppendItemsCommand) Items() []*order.Item {
	return c.items
}

func (c *AppendItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AppendItemsCommand) setItems(specs []ItemSpec) error {
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
