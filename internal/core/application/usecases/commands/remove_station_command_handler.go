package commands

import (
	"context"
)

// RemoveStationCommandHandler deletes stations from the registry, cascading
// over the routing assignments that referenced them.
type RemoveStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewRemoveStationCommandHandler creates a handler for station removal.
func NewRemoveStationCommandHandler(uowFactory StationUoWFactory) RemoveStationCommandHandler {
	return RemoveStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove station command. An unknown station yields an
// ObjectNotFoundError from the existence check.
func (h RemoveStationCommandHandler) Handle(ctx context.Context, cmd RemoveStationCommand) error {
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

	stationRepo := uow.StationRepository()

	if _, err := stationRepo.Get(ctx, cmd.StationID()); err != nil {
		return err
	}

	if err := stationRepo.Remove(ctx, cmd.StationID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
