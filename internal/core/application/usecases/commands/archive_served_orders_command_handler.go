package commands

import (
	"context"
	"errors"
	"time"
)

// ErrNoServedOrdersToArchive signals that the purge found nothing past the
// retention window. An expected outcome for the archival job, not a failure.
var ErrNoServedOrdersToArchive = errors.New("no served orders to archive")

// ArchiveServedOrdersCommandHandler purges orders whose canonical status
// reached served before the retention cutoff.
type ArchiveServedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveServedOrdersCommandHandler creates a handler for archival
// operations.
func NewArchiveServedOrdersCommandHandler(uowFactory OrderUoWFactory) ArchiveServedOrdersCommandHandler {
	return ArchiveServedOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle processes the archival command. Returns
// ErrNoServedOrdersToArchive when the active tables held nothing old enough
// to purge.
func (h ArchiveServedOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveServedOrdersCommand) error {
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

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	purged, err := uow.OrderRepository().DeleteServedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if purged == 0 {
		return ErrNoServedOrdersToArchive
	}

	return nil
}
