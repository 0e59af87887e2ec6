package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// AppendItemsCommandHandler handles front-of-house edits that extend an
// existing order. The order row is locked while the edit applies, so an
// append and a concurrent item transition on the same order serialize.
type AppendItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAppendItemsCommandHandler creates a handler for append-items
// operations.
func NewAppendItemsCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) AppendItemsCommandHandler {
	return AppendItemsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the append items command. Appending marks the order
// edited and re-arms the ready alert inside the aggregate; the change event
// fires after the commit.
func (h AppendItemsCommandHandler) Handle(ctx context.Context, cmd AppendItemsCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AppendItems(cmd.Items()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderChanged(o)
	return nil
}
