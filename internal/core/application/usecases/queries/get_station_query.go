package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetStationQueryIsNotConstructed = errors.New(
	"GetStationQuery must be created via NewGetStationQuery constructor",
)

// GetStationQuery retrieves a single station, mainly to resolve the location
// a terminal's event stream subscribes to.
type GetStationQuery struct {
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStationQuery creates a query for one station.
func NewGetStationQuery(stationID kernel.UUID) (GetStationQuery, error) {
	if err := stationID.Validate(); err != nil {
		return GetStationQuery{}, err
	}

	return GetStationQuery{
		stationID: stationID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueryIsNotConstructed)
}

// StationID returns the requested station.
func (q GetStationQuery) StationID() kernel.UUID {
	return q.stationID
}
