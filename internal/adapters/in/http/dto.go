package http

import (
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ItemRequest is one item line of an ingestion or append request.
type ItemRequest struct {
	MenuItemID *string `json:"menu_item_id,omitempty"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Notes      *string `json:"notes,omitempty"`
	Seat       *int    `json:"seat,omitempty"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	LocationID  string        `json:"location_id"`
	Fulfillment string        `json:"fulfillment"`
	TableLabel  *string       `json:"table_label,omitempty"`
	StaffID     string        `json:"staff_id"`
	Items       []ItemRequest `json:"items"`
}

// AppendItemsRequest is the body of POST /orders/:orderId/items.
type AppendItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

// TransitionRequest is the body of the start/ready/served operations. An
// empty or omitted item list means every visible item currently eligible
// for the step.
type TransitionRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// AddStationRequest is the body of POST /locations/:locationId/stations.
type AddStationRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsDefault bool   `json:"is_default"`
}

// SetItemRoutingRequest is the body of PUT /menu-items/:menuItemId/stations.
// An empty station list clears the assignment, restoring the
// default-station fallback.
type SetItemRoutingRequest struct {
	LocationID string   `json:"location_id"`
	StationIDs []string `json:"station_ids"`
}

// CreatedResponse carries the identifier minted for a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Item is one item line as shown on a terminal.
type Item struct {
	ID         string     `json:"id"`
	MenuItemID *string    `json:"menu_item_id,omitempty"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	Notes      *string    `json:"notes,omitempty"`
	Seat       *int       `json:"seat,omitempty"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	ReadyAt    *time.Time `json:"ready_at,omitempty"`
	ServedAt   *time.Time `json:"served_at,omitempty"`
}

// Order is one order with its derived status. On a station view the status
// reflects only the items visible there.
type Order struct {
	ID          string    `json:"id"`
	Fulfillment string    `json:"fulfillment"`
	TableLabel  *string   `json:"table_label,omitempty"`
	Status      string    `json:"status"`
	Edited      bool      `json:"edited"`
	CreatedAt   time.Time `json:"created_at"`
	Items       []Item    `json:"items"`
}

// Station is one station of a location's registry.
type Station struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsDefault bool   `json:"is_default"`
}

func toOrder(resp queries.OrderResponse) Order {
	items := make([]Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, toItem(item))
	}

	return Order{
		ID:          resp.ID.String(),
		Fulfillment: resp.Fulfillment,
		TableLabel:  resp.TableLabel,
		Status:      resp.Status,
		Edited:      resp.Edited,
		CreatedAt:   resp.CreatedAt,
		Items:       items,
	}
}

func toItem(resp queries.OrderItemResponse) Item {
	var menuItemID *string
	if resp.MenuItemID != nil {
		s := resp.MenuItemID.String()
		menuItemID = &s
	}

	return Item{
		ID:         resp.ID.String(),
		MenuItemID: menuItemID,
		Name:       resp.Name,
		Quantity:   resp.Quantity,
		Notes:      resp.Notes,
		Seat:       resp.Seat,
		Status:     resp.Status,
		StartedAt:  resp.StartedAt,
		ReadyAt:    resp.ReadyAt,
		ServedAt:   resp.ServedAt,
	}
}

func toOrders(resps []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(resps))
	for _, resp := range resps {
		orders = append(orders, toOrder(resp))
	}
	return orders
}

func toStation(resp queries.StationResponse) Station {
	return Station{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		SortOrder: resp.SortOrder,
		IsDefault: resp.IsDefault,
	}
}

// toItemSpecs mints item identifiers and converts request lines into
// command specs. Line-level validation happens in the command constructor.
func toItemSpecs(reqs []ItemRequest) ([]commands.ItemSpec, error) {
	specs := make([]commands.ItemSpec, 0, len(reqs))
	for _, req := range reqs {
		spec := commands.ItemSpec{
			ItemID:   kernel.NewUUID(),
			Name:     req.Name,
			Quantity: req.Quantity,
			Notes:    req.Notes,
			Seat:     req.Seat,
		}

		if req.MenuItemID != nil {
			menuItemID, err := kernel.UUIDFromString(*req.MenuItemID)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("menu_item_id", err)
			}
			spec.MenuItemID = &menuItemID
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func toUUIDs(name string, raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
