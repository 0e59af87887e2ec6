package services

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/station"
)

// Router is the pure domain service that partitions an order's items across
// preparation stations. Given a station and a routing-table snapshot it
// computes the station's visible item subset and the per-station derived
// status.
//
// Visibility rules:
//   - an item whose menu item has a non-empty routing assignment is visible
//     on exactly the assigned stations
//   - an item without an assignment (including ad-hoc items with no menu
//     item reference, and assignment rows with an empty station set) falls
//     back to the default station; with no default station configured it is
//     visible nowhere
//   - served items are suppressed from every non-default station's view so
//     a working queue never shows completed history, but are retained on
//     the default station because it is the system-of-record view
type Router struct{}

// NewRouter creates a new Router instance.
func NewRouter() Router {
	return Router{}
}

// VisibleItems returns the subset of the order's items the station
// displays, in the order's item sequence. isDefault tells the router
// whether the station carries the location's default flag.
func (r Router) VisibleItems(
	stationID kernel.UUID,
	isDefault bool,
	routing station.RoutingTable,
	o *order.Order,
) []*order.Item {
	visible := make([]*order.Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		if !r.itemVisible(stationID, isDefault, routing, item) {
			continue
		}
		if item.Status() == order.Served && !isDefault {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// VisibleOrder computes the station's view of one order: the visible item
// subset and the status derived from that subset. ok is false when the
// subset is empty, meaning the order is not relevant to this station right
// now and is excluded from its visible order list entirely. That is not an
// error condition.
func (r Router) VisibleOrder(
	stationID kernel.UUID,
	isDefault bool,
	routing station.RoutingTable,
	o *order.Order,
) ([]*order.Item, order.Status, bool) {
	items := r.VisibleItems(stationID, isDefault, routing, o)
	if len(items) == 0 {
		return nil, order.StatusUnknown, false
	}

	// The subset is non-empty, so derivation cannot fail.
	status, _ := order.DeriveStatus(items)
	return items, status, true
}

func (r Router) itemVisible(
	stationID kernel.UUID,
	isDefault bool,
	routing station.RoutingTable,
	item *order.Item,
) bool {
	menuItemID := item.MenuItemID()
	if menuItemID == nil || !routing.HasAssignment(*menuItemID) {
		return isDefault
	}
	return routing.Routes(*menuItemID, stationID)
}
