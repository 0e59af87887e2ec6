package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/pkg/errs"
)

// ErrDefaultStationAlreadyExists is returned when a second station would
// carry a location's default flag.
var ErrDefaultStationAlreadyExists = errors.New("location already has a default station")

// AddStationCommandHandler registers new preparation stations. At most one
// station per location may carry the default flag; the handler checks first
// for a friendly error, and the partial unique index on stations rejects
// the loser when two default registrations race.
type AddStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewAddStationCommandHandler creates a handler for station registration.
func NewAddStationCommandHandler(uowFactory StationUoWFactory) AddStationCommandHandler {
	return AddStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add station command.
func (h AddStationCommandHandler) Handle(ctx context.Context, cmd AddStationCommand) error {
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

	if cmd.IsDefault() {
		_, err := stationRepo.GetDefault(ctx, cmd.LocationID())
		if err == nil {
			return ErrDefaultStationAlreadyExists
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	s, err := station.NewStation(cmd.StationID(), cmd.LocationID(), cmd.Name(), cmd.SortOrder(), cmd.IsDefault())
	if err != nil {
		return err
	}

	if err = stationRepo.Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
