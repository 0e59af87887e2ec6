// Package queries contains read-only operations for station terminals and
// configuration screens. Query handlers read the database directly; they
// never mutate state and never take row locks.
package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrListStationsQueryIsNotConstructed = errors.New(
	"ListStationsQuery must be created via NewListStationsQuery constructor",
)

// ListStationsQuery retrieves a location's station registry in display
// order.
type ListStationsQuery struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListStationsQuery creates a query for a location's stations.
func NewListStationsQuery(locationID kernel.UUID) (ListStationsQuery, error) {
	if err := locationID.Validate(); err != nil {
		return ListStationsQuery{}, err
	}

	return ListStationsQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStationsQuery) Validate() error {
	return q.guard.Validate(ErrListStationsQueryIsNotConstructed)
}

// LocationID returns the location whose stations are listed.
func (q ListStationsQuery) LocationID() kernel.UUID {
	return q.locationID
}

// StationResponse represents one station of the registry.
type StationResponse struct {
	ID         kernel.UUID
	LocationID kernel.UUID
	Name       string
	SortOrder  int
	IsDefault  bool
}
