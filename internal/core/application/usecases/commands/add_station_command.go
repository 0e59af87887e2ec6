package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrAddStationCommandIsNotConstructed = errors.New(
	"AddStationCommand must be created via NewAddStationCommand constructor",
)

// AddStationCommand represents a configuration request to register a new
// preparation station at a location.
type AddStationCommand struct { //nolint:recvcheck //using for validation
	stationID  kernel.UUID
	locationID kernel.UUID
	name       string
	sortOrder  int
	isDefault  bool

	guard guard.ConstructorGuard
}

// NewAddStationCommand creates a command to register a station.
func NewAddStationCommand(stationID, locationID kernel.UUID, name string, sortOrder int, isDefault bool) (AddStationCommand, error) {
	cmd := AddStationCommand{
		sortOrder: sortOrder,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStationID(stationID),
		cmd.setLocationID(locationID),
		cmd.setName(name),
	); err != nil {
		return AddStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStationCommand) Validate() error {
	return c.guard.Validate(ErrAddStationCommandIsNotConstructed)
}

// StationID returns the identifier for the new station.
func (c AddStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// LocationID returns the location the station belongs to.
func (c AddStationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the display name.
func (c AddStationCommand) Name() string {
	return c.name
}

// SortOrder returns the display order among the location's stations.
func (c AddStationCommand) SortOrder() int {
	return c.sortOrder
}

// IsDefault reports whether the station should carry the default flag.
func (c AddStationCommand) IsDefault() bool {
	return c.isDefault
}

func (c *AddStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	c.stationID = stationID
	return nil
}

func (c *AddStationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}

func (c *AddStationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
