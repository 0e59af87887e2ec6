// Package ports defines the contracts between the kitchen engine's core and
// its infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station
// configuration: the station registry and the routing assignments.
//
// From the engine's perspective this configuration is read-only snapshot
// data; the write operations exist for the configuration authority.
type StationRepository interface {
	// Add persists a new station.
	Add(ctx context.Context, s *station.Station) error

	// Remove deletes a station and cascades over the routing assignments:
	// the station is removed from every assignment set. Items are not
	// affected.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a station by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// GetAllByLocation retrieves a location's stations in display order.
	GetAllByLocation(ctx context.Context, locationID kernel.UUID) ([]*station.Station, error)

	// GetDefault retrieves the location's default station, or an
	// ObjectNotFoundError when no station carries the flag.
	GetDefault(ctx context.Context, locationID kernel.UUID) (*station.Station, error)

	// RoutingTable reads the routing assignment snapshot for a location's
	// stations.
	RoutingTable(ctx context.Context, locationID kernel.UUID) (station.RoutingTable, error)

	// SetItemRouting replaces the set of stations assigned to a menu item.
	// An empty set clears the assignment, restoring the default-station
	// fallback for that menu item.
	SetItemRouting(ctx context.Context, menuItemID kernel.UUID, stationIDs []kernel.UUID) error
}
