package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrSetItemRoutingCommandIsNotConstructed = errors.New(
	"SetItemRoutingCommand must be created via NewSetItemRoutingCommand constructor",
)

// SetItemRoutingCommand represents a configuration request to replace a
// menu item's routing assignment. An empty station set clears the
// assignment, restoring the default-station fallback for that menu item.
type SetItemRoutingCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	menuItemID kernel.UUID
	stationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetItemRoutingCommand creates a command to replace a menu item's
// routing assignment.
func NewSetItemRoutingCommand(locationID, menuItemID kernel.UUID, stationIDs []kernel.UUID) (SetItemRoutingCommand, error) {
	cmd := SetItemRoutingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setMenuItemID(menuItemID),
		cmd.setStationIDs(stationIDs),
	); err != nil {
		return SetItemRoutingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetItemRoutingCommand) Validate() error {
	return c.guard.Validate(ErrSetItemRoutingCommandIsNotConstructed)
}

// LocationID returns the location whose routing is being configured.
func (c SetItemRoutingCommand) LocationID() kernel.UUID {
	return c.locationID
}

// MenuItemID returns the menu item being assigned.
func (c SetItemRoutingCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// StationIDs returns the replacement station set. May be empty.
func (c SetItemRoutingCommand) StationIDs() []kernel.UUID {
	return c.stationIDs
}

func (c *SetItemRoutingCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}

func (c *SetItemRoutingCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *SetItemRoutingCommand) setStationIDs(stationIDs []kernel.UUID) error {
	for _, id := range stationIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.stationIDs = stationIDs
	return nil
}
