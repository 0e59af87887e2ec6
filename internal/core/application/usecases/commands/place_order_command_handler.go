package commands

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the aggregate with all items pending and announces the new order
// to subscribed station terminals after the transaction commits.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement
// operations.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the place order command. The order is persisted with its
// item rows in a single transaction; the change event fires only after the
// commit succeeds.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.LocationID(),
		cmd.Fulfillment(),
		cmd.TableLabel(),
		cmd.StaffID(),
		time.Now().UTC(),
		cmd.Items(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderChanged(o)
	return nil
}
