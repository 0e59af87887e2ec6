// Package stationrepo provides persistence for the station registry and the
// routing assignments.
package stationrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for stations. The partial
// unique index on location_id enforces at most one default station per
// location even when registrations race.
type StationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uniq_default_station_per_location,where:is_default"`
	Name       string
	SortOrder  int
	IsDefault  bool
}

// TableName specifies the database table name for station entities.
func (StationDTO) TableName() string {
	return "stations"
}

// RoutingDTO represents one row of a routing assignment: menu item X is
// displayed on station Y. A menu item's assignment is the set of its rows;
// no rows means default-station fallback.
type RoutingDTO struct {
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StationID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for routing assignments.
func (RoutingDTO) TableName() string {
	return "routing_assignments"
}

func fromDomain(s *station.Station) StationDTO {
	return StationDTO{
		ID:         s.ID().Bytes(),
		LocationID: s.LocationID().Bytes(),
		Name:       s.Name(),
		SortOrder:  s.SortOrder(),
		IsDefault:  s.IsDefault(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, locationID, dto.Name, dto.SortOrder, dto.IsDefault)
}
