package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a location's active set: every order whose
// canonical status has not reached served, with the complete item sequences.
// This is the unfiltered system-of-record view used by expediters and
// management screens.
type GetActiveOrdersQuery struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a location's active orders.
func NewGetActiveOrdersQuery(locationID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// LocationID returns the location whose active set is read.
func (q GetActiveOrdersQuery) LocationID() kernel.UUID {
	return q.locationID
}

// OrderItemResponse represents one item line as shown on a terminal.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID *kernel.UUID
	Name       string
	Quantity   int
	Notes      *string
	Seat       *int
	Status     string
	StartedAt  *time.Time
	ReadyAt    *time.Time
	ServedAt   *time.Time
}

// OrderResponse represents one order with its derived status. For the
// active-set query the status is canonical; for the station view it is
// derived from the station's visible subset only.
type OrderResponse struct {
	ID          kernel.UUID
	Fulfillment string
	TableLabel  *string
	Status      string
	Edited      bool
	CreatedAt   time.Time
	Items       []OrderItemResponse
}

func itemResponse(item *order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:         item.ID(),
		MenuItemID: item.MenuItemID(),
		Name:       item.Name(),
		Quantity:   item.Quantity(),
		Notes:      item.Notes(),
		Seat:       item.Seat(),
		Status:     item.Status().String(),
		StartedAt:  item.StartedAt(),
		ReadyAt:    item.ReadyAt(),
		ServedAt:   item.ServedAt(),
	}
}

func orderResponse(o *order.Order, items []*order.Item, status order.Status) OrderResponse {
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, itemResponse(item))
	}

	return OrderResponse{
		ID:          o.ID(),
		Fulfillment: o.Fulfillment().String(),
		TableLabel:  o.TableLabel(),
		Status:      status.String(),
		Edited:      o.Edited(),
		CreatedAt:   o.CreatedAt(),
		Items:       itemResponses,
	}
}
