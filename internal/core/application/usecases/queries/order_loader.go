package queries

import (
	"context"
	"database/sql"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderHeader carries one scanned order row until its items arrive.
type orderHeader struct {
	id           kernel.UUID
	rawID        uuid.UUID
	fulfillment  order.Fulfillment
	tableLabel   *string
	staffID      kernel.UUID
	createdAt    time.Time
	edited       bool
	readyAlerted bool
}

// loadActiveOrders reads a location's active set (every order not yet fully
// served) with the complete item sequences and restores the domain
// aggregates. Orders come back oldest first; items keep their placement
// order.
func loadActiveOrders(ctx context.Context, db *gorm.DB, locationID kernel.UUID) ([]*order.Order, error) {
	headers, err := loadOrderHeaders(ctx, db, locationID)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return []*order.Order{}, nil
	}

	itemsByOrder, err := loadActiveItems(ctx, db, locationID)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(headers))
	for _, h := range headers {
		o, restoreErr := order.RestoreOrder(
			h.id,
			locationID,
			h.fulfillment,
			h.tableLabel,
			h.staffID,
			h.createdAt,
			itemsByOrder[h.rawID],
			h.edited,
			h.readyAlerted,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func loadOrderHeaders(ctx context.Context, db *gorm.DB, locationID kernel.UUID) ([]orderHeader, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			fulfillment,
			table_label,
			staff_id,
			edited,
			ready_alerted,
			created_at
		FROM orders
		WHERE location_id = ? AND status <> ?
		ORDER BY created_at, id
	`, locationID.Bytes(), int(order.StatusServed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]orderHeader, 0)
	for rows.Next() {
		var h orderHeader
		var id, staffID uuid.UUID
		var fulfillment int
		var tableLabel sql.NullString

		err = rows.Scan(&id, &fulfillment, &tableLabel, &staffID, &h.edited, &h.readyAlerted, &h.createdAt)
		if err != nil {
			return nil, err
		}

		if h.id, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if h.staffID, err = kernel.UUIDFromBytes(staffID[:]); err != nil {
			return nil, err
		}
		h.rawID = id
		h.fulfillment = order.Fulfillment(fulfillment)
		if tableLabel.Valid {
			h.tableLabel = &tableLabel.String
		}
		headers = append(headers, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return headers, nil
}

func loadActiveItems(ctx context.Context, db *gorm.DB, locationID kernel.UUID) (map[uuid.UUID][]*order.Item, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.id,
			i.menu_item_id,
			i.name,
			i.quantity,
			i.notes,
			i.seat,
			i.status,
			i.started_at,
			i.ready_at,
			i.served_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.location_id = ? AND o.status <> ?
		ORDER BY i.order_id, i.position
	`, locationID.Bytes(), int(order.StatusServed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]*order.Item)
	for rows.Next() {
		var orderID, itemID uuid.UUID
		var menuItemID uuid.NullUUID
		var name string
		var quantity, status int
		var notes sql.NullString
		var seat sql.NullInt64
		var startedAt, readyAt, servedAt sql.NullTime

		err = rows.Scan(&orderID, &itemID, &menuItemID, &name, &quantity,
			&notes, &seat, &status, &startedAt, &readyAt, &servedAt)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		var menuID *kernel.UUID
		if menuItemID.Valid {
			mID, mErr := kernel.UUIDFromBytes(menuItemID.UUID[:])
			if mErr != nil {
				return nil, mErr
			}
			menuID = &mID
		}

		item, itemErr := order.RestoreItem(
			id,
			menuID,
			name,
			quantity,
			nullString(notes),
			nullInt(seat),
			order.ItemStatus(status),
			nullTime(startedAt),
			nullTime(readyAt),
			nullTime(servedAt),
		)
		if itemErr != nil {
			return nil, itemErr
		}

		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
