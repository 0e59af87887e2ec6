package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStationsQueryHandler reads the station registry for configuration
// screens and terminal selection.
type ListStationsQueryHandler struct {
	db *gorm.DB
}

// NewListStationsQueryHandler creates a handler for station registry
// queries.
func NewListStationsQueryHandler(db *gorm.DB) ListStationsQueryHandler {
	return ListStationsQueryHandler{db: db}
}

// Handle executes the query. Stations are returned in display order with a
// stable name tie-break.
func (h ListStationsQueryHandler) Handle(ctx context.Context, query ListStationsQuery) ([]StationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations := make([]StationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sort_order,
			is_default
		FROM stations
		WHERE location_id = ?
		ORDER BY sort_order, name
	`, query.LocationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StationResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.SortOrder, &resp.IsDefault); err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = stationID
		resp.LocationID = query.LocationID()
		stations = append(stations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
