package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVisibleOrdersQueryHandler computes a station's working queue. It reads
// the station, the routing snapshot and the location's active set, then lets
// the domain router partition each order into the station's view.
type ListVisibleOrdersQueryHandler struct {
	db     *gorm.DB
	router services.Router
}

// NewListVisibleOrdersQueryHandler creates a handler for station queue
// queries.
func NewListVisibleOrdersQueryHandler(db *gorm.DB) ListVisibleOrdersQueryHandler {
	return ListVisibleOrdersQueryHandler{
		db:     db,
		router: services.NewRouter(),
	}
}

// Handle executes the query. An unknown station yields an
// ObjectNotFoundError; a station with an empty queue yields an empty list.
func (h ListVisibleOrdersQueryHandler) Handle(ctx context.Context, query ListVisibleOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locationID, isDefault, err := h.loadStation(ctx, query.StationID())
	if err != nil {
		return nil, err
	}

	routing, err := h.loadRoutingTable(ctx, locationID)
	if err != nil {
		return nil, err
	}

	orders, err := loadActiveOrders(ctx, h.db, locationID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items, status, ok := h.router.VisibleOrder(query.StationID(), isDefault, routing, o)
		if !ok {
			continue
		}
		responses = append(responses, orderResponse(o, items, status))
	}

	return responses, nil
}

func (h ListVisibleOrdersQueryHandler) loadStation(ctx context.Context, stationID kernel.UUID) (kernel.UUID, bool, error) {
	var locationID uuid.UUID
	var isDefault bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT location_id, is_default
		FROM stations
		WHERE id = ?
	`, stationID.Bytes()).Row()

	if err := row.Scan(&locationID, &isDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, false, errs.NewObjectNotFoundError("stationId", stationID.String())
		}
		return kernel.UUID{}, false, err
	}

	id, err := kernel.UUIDFromBytes(locationID[:])
	if err != nil {
		return kernel.UUID{}, false, err
	}

	return id, isDefault, nil
}

func (h ListVisibleOrdersQueryHandler) loadRoutingTable(ctx context.Context, locationID kernel.UUID) (station.RoutingTable, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, station_id
		FROM routing_assignments
		WHERE location_id = ?
	`, locationID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(station.RoutingTable)
	for rows.Next() {
		var menuItemID, stationID uuid.UUID
		if err = rows.Scan(&menuItemID, &stationID); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		sID, idErr := kernel.UUIDFromBytes(stationID[:])
		if idErr != nil {
			return nil, idErr
		}

		table[menuID] = append(table[menuID], sID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
