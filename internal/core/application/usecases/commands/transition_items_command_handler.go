package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// notifyTimeout bounds the ready-alert hand-off so a slow notification sink
// cannot stall the request that completed the order.
const notifyTimeout = 2 * time.Second

// TransitionItemsCommandHandler applies item status transitions for one
// order inside a single transaction. The order row is locked for the
// duration, so two terminals advancing different items of the same order
// serialize and both succeed, while a duplicate request becomes an
// idempotent no-op at the domain level.
//
// After a successful commit the handler owns two side effects:
//
//   - if the canonical status arrived at ready and the alert has not fired
//     for this arrival, it hands a ready alert to the notifier. Delivery is
//     fire-and-forget: an error is logged and dropped, never returned.
//   - it publishes the changed order to subscribed station terminals.
type TransitionItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ReadyNotifier
	publisher  ports.OrderEventPublisher
	log        *slog.Logger
}

// NewTransitionItemsCommandHandler creates a handler for item transition
// operations.
func NewTransitionItemsCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ReadyNotifier,
	publisher ports.OrderEventPublisher,
	log *slog.Logger,
) TransitionItemsCommandHandler {
	return TransitionItemsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		log:        log.With("component", "transition_items"),
	}
}

// Handle processes the transition command. The aggregate validates the whole
// set before applying anything, so a single illegal item rejects the request
// with an InvalidTransitionError naming the offender and no state changes.
func (h TransitionItemsCommandHandler) Handle(ctx context.Context, cmd TransitionItemsCommand) error {
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

	if err = o.TransitionItems(cmd.ItemIDs(), cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	status, err := o.Status()
	if err != nil {
		return err
	}

	// The alert flag must flip inside the same transaction as the transition
	// so the alert fires at most once per arrival at ready even under
	// concurrent requests.
	alert := status == order.StatusReady && !o.ReadyAlerted()
	if alert {
		o.MarkReadyAlerted()
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if alert {
		h.notifyReady(o)
	}

	h.publisher.OrderChanged(o)
	return nil
}

func (h TransitionItemsCommandHandler) notifyReady(o *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	alert := ports.ReadyAlert{
		OrderID:  o.ID(),
		StaffID:  o.StaffID(),
		Location: o.LocationDescriptor(),
	}
	if err := h.notifier.NotifyReady(ctx, alert); err != nil {
		h.log.Error("ready alert delivery failed",
			"order_id", o.ID().String(),
			"error", err)
	}
}
