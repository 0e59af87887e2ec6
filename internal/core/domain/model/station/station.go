package station

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrStationIsNotConstructed is returned when a Station instance was not
// created through NewStation or RestoreStation.
var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation or RestoreStation")

// Station is a named preparation surface (a KDS screen) staff act on.
//
// At most one station per location carries the default flag; that station
// is the system-of-record view and receives every item without a routing
// assignment. The uniqueness of the flag is enforced by the configuration
// authority, not by this entity: the engine tolerates a location with no
// default station, in which case unassigned items are invisible to every
// station.
type Station struct {
	// id is the unique identifier for the station
	id kernel.UUID

	// locationID identifies the restaurant location the station belongs to
	locationID kernel.UUID

	// name is the display name shown to staff
	name string

	// sortOrder controls the display order among a location's stations
	sortOrder int

	// isDefault marks the fallback/system-of-record station
	isDefault bool

	// isConstructed ensures the station was created via a constructor
	isConstructed bool
}

// NewStation creates a new Station with validation.
func NewStation(id, locationID kernel.UUID, name string, sortOrder int, isDefault bool) (*Station, error) {
	s := &Station{
		sortOrder:     sortOrder,
		isDefault:     isDefault,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setLocationID(locationID),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a station from persistence.
func RestoreStation(id, locationID kernel.UUID, name string, sortOrder int, isDefault bool) (*Station, error) {
	return NewStation(id, locationID, name, sortOrder, isDefault)
}

// Validate ensures the Station was created through a constructor.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// LocationID returns the restaurant location the station belongs to.
func (s *Station) LocationID() kernel.UUID {
	return s.locationID
}

// Name returns the display name.
func (s *Station) Name() string {
	return s.name
}

// SortOrder returns the display order among the location's stations.
func (s *Station) SortOrder() int {
	return s.sortOrder
}

// IsDefault reports whether this is the fallback/system-of-record station.
func (s *Station) IsDefault() bool {
	return s.isDefault
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	s.locationID = locationID
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
