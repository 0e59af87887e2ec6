package station

import "kitchen/internal/core/domain/model/kernel"

// RoutingTable maps a menu-item identifier to the set of stations that
// should display it. It is read as a snapshot at the start of each routing
// computation; the engine never mutates it.
//
// Absence of an entry for a menu item means "route to the default station
// only". An entry with an empty station set is treated identically: a
// technically-present assignment row with zero stations is not an
// assignment.
type RoutingTable map[kernel.UUID][]kernel.UUID

// StationsFor returns the stations assigned to the given menu item.
func (t RoutingTable) StationsFor(menuItemID kernel.UUID) []kernel.UUID {
	return t[menuItemID]
}

// HasAssignment reports whether the menu item has a non-empty routing
// assignment. Items without one fall back to the default station.
func (t RoutingTable) HasAssignment(menuItemID kernel.UUID) bool {
	return len(t[menuItemID]) > 0
}

// Routes reports whether the menu item's assignment includes the station.
func (t RoutingTable) Routes(menuItemID, stationID kernel.UUID) bool {
	for _, id := range t[menuItemID] {
		if id.IsEqual(stationID) {
			return true
		}
	}
	return false
}
