package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveStationCommandIsNotConstructed = errors.New(
	"RemoveStationCommand must be created via NewRemoveStationCommand constructor",
)

// RemoveStationCommand represents a configuration request to delete a
// station. Routing assignments referencing the station are cascaded away;
// removing the default station leaves the location without a fallback, so
// unassigned items become invisible until a new default is configured.
type RemoveStationCommand struct { //nolint:recvcheck //using for validation
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStationCommand creates a command to remove a station.
func NewRemoveStationCommand(stationID kernel.UUID) (RemoveStationCommand, error) {
	cmd := RemoveStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setStationID(stationID); err != nil {
		return RemoveStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStationCommandIsNotConstructed)
}

// StationID returns the station to remove.
func (c RemoveStationCommand) StationID() kernel.UUID {
	return c.stationID
}

func (c *RemoveStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	c.stationID = stationID
	return nil
}
