package stationrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Add saves a new station to the database.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Remove deletes a station and every routing assignment row referencing it.
func (r *GormStationRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("station_id = ?", id.Bytes()).
		Delete(&RoutingDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&StationDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stationId", id.String())
	}

	return nil
}

// Get retrieves a station by ID.
func (r *GormStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByLocation retrieves a location's stations in display order.
func (r *GormStationRepository) GetAllByLocation(ctx context.Context, locationID kernel.UUID) ([]*station.Station, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID.Bytes()).
		Order("sort_order, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		s, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		stations = append(stations, s)
	}

	return stations, nil
}

// GetDefault retrieves the location's default station.
func (r *GormStationRepository) GetDefault(ctx context.Context, locationID kernel.UUID) (*station.Station, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "location_id = ? AND is_default", locationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locationId", locationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// RoutingTable reads the routing assignment snapshot for a location.
func (r *GormStationRepository) RoutingTable(ctx context.Context, locationID kernel.UUID) (station.RoutingTable, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RoutingDTO
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	table := make(station.RoutingTable)
	for _, dto := range dtos {
		menuItemID, idErr := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		stationID, idErr := kernel.UUIDFromBytes(dto.StationID[:])
		if idErr != nil {
			return nil, idErr
		}
		table[menuItemID] = append(table[menuItemID], stationID)
	}

	return table, nil
}

// SetItemRouting replaces a menu item's assignment rows. An empty set only
// deletes, restoring the default-station fallback.
func (r *GormStationRepository) SetItemRouting(ctx context.Context, menuItemID kernel.UUID, stationIDs []kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID.Bytes()).
		Delete(&RoutingDTO{}).Error; err != nil {
		return err
	}

	if len(stationIDs) == 0 {
		return nil
	}

	rawIDs := make([]uuid.UUID, 0, len(stationIDs))
	for _, id := range stationIDs {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var stations []StationDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs).Find(&stations).Error; err != nil {
		return err
	}
	if len(stations) != len(stationIDs) {
		return errs.NewObjectNotFoundError("stationIds", "one or more stations do not exist")
	}

	rows := make([]RoutingDTO, 0, len(stations))
	for _, s := range stations {
		rows = append(rows, RoutingDTO{
			MenuItemID: menuItemID.Bytes(),
			StationID:  s.ID,
			LocationID: s.LocationID,
		})
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}
