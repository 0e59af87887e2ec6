package commands

import (
	"context"
	"fmt"

	"kitchen/internal/pkg/errs"
)

// SetItemRoutingCommandHandler replaces routing assignments. Every station
// in the replacement set must exist and belong to the command's location;
// the validation and the replacement share a transaction so the assignment
// cannot reference a station deleted concurrently.
type SetItemRoutingCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewSetItemRoutingCommandHandler creates a handler for routing
// configuration.
func NewSetItemRoutingCommandHandler(uowFactory StationUoWFactory) SetItemRoutingCommandHandler {
	return SetItemRoutingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set item routing command.
func (h SetItemRoutingCommandHandler) Handle(ctx context.Context, cmd SetItemRoutingCommand) error {
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

	for _, stationID := range cmd.StationIDs() {
		s, err := stationRepo.Get(ctx, stationID)
		if err != nil {
			return err
		}
		if !s.LocationID().IsEqual(cmd.LocationID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"stationIds",
				fmt.Errorf("station %s belongs to another location", stationID),
			)
		}
	}

	if err := stationRepo.SetItemRouting(ctx, cmd.MenuItemID(), cmd.StationIDs()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
