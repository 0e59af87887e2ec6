// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Items are stored as individually addressable rows so
// concurrent transitions touch only the rows they change; the item list is
// never overwritten as a collection.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The canonical status is denormalized onto the row for
// active-set queries and archival; the source of truth remains the item
// rows.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID   uuid.UUID `gorm:"type:uuid;index"`
	Fulfillment  int
	TableLabel   *string
	StaffID      uuid.UUID `gorm:"type:uuid"`
	Status       int       `gorm:"index"`
	Edited       bool
	ReadyAlerted bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one item row. Position preserves the order's item
// sequence across reads.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Position   int
	MenuItemID *uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Quantity   int
	Notes      *string
	Seat       *int
	Status     int
	StartedAt  *time.Time
	ReadyAt    *time.Time
	ServedAt   *time.Time
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, deriving the denormalized canonical status.
func fromDomain(o *order.Order) (OrderDTO, error) {
	status, err := o.Status()
	if err != nil {
		return OrderDTO{}, err
	}

	items := o.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(o.ID(), position, item))
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		LocationID:   o.LocationID().Bytes(),
		Fulfillment:  int(o.Fulfillment()),
		TableLabel:   o.TableLabel(),
		StaffID:      o.StaffID().Bytes(),
		Status:       int(status),
		Edited:       o.Edited(),
		ReadyAlerted: o.ReadyAlerted(),
		CreatedAt:    o.CreatedAt(),
		Items:        itemDTOs,
	}, nil
}

func itemFromDomain(orderID kernel.UUID, position int, item *order.Item) ItemDTO {
	var menuItemID *uuid.UUID
	if id := item.MenuItemID(); id != nil {
		raw := id.Bytes()
		menuItemID = &raw
	}

	return ItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		Position:   position,
		MenuItemID: menuItemID,
		Name:       item.Name(),
		Quantity:   item.Quantity(),
		Notes:      item.Notes(),
		Seat:       item.Seat(),
		Status:     int(item.Status()),
		StartedAt:  item.StartedAt(),
		ReadyAt:    item.ReadyAt(),
		ServedAt:   item.ServedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate. Items are
// expected in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		locationID,
		order.Fulfillment(dto.Fulfillment),
		dto.TableLabel,
		staffID,
		dto.CreatedAt,
		items,
		dto.Edited,
		dto.ReadyAlerted,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var menuItemID *kernel.UUID
	if dto.MenuItemID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.MenuItemID)[:])
		if mErr != nil {
			return nil, mErr
		}
		menuItemID = &mID
	}

	return order.RestoreItem(
		id,
		menuItemID,
		dto.Name,
		dto.Quantity,
		dto.Notes,
		dto.Seat,
		order.ItemStatus(dto.Status),
		dto.StartedAt,
		dto.ReadyAt,
		dto.ServedAt,
	)
}
