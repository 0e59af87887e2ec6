package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationQueryHandler reads one station row.
type GetStationQueryHandler struct {
	db *gorm.DB
}

// NewGetStationQueryHandler creates a handler for single-station lookups.
func NewGetStationQueryHandler(db *gorm.DB) GetStationQueryHandler {
	return GetStationQueryHandler{db: db}
}

// Handle executes the query. An unknown station yields an
// ObjectNotFoundError.
func (h GetStationQueryHandler) Handle(ctx context.Context, query GetStationQuery) (StationResponse, error) {
	if err := query.Validate(); err != nil {
		return StationResponse{}, err
	}

	var resp StationResponse
	var id, locationID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, location_id, name, sort_order, is_default
		FROM stations
		WHERE id = ?
	`, query.StationID().Bytes()).Row()

	if err := row.Scan(&id, &locationID, &resp.Name, &resp.SortOrder, &resp.IsDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StationResponse{}, errs.NewObjectNotFoundError("stationId", query.StationID().String())
		}
		return StationResponse{}, err
	}

	stationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StationResponse{}, err
	}
	locID, err := kernel.UUIDFromBytes(locationID[:])
	if err != nil {
		return StationResponse{}, err
	}

	resp.ID = stationID
	resp.LocationID = locID
	return resp, nil
}
