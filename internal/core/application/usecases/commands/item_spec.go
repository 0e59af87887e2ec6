package commands

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// ItemSpec describes one item line of a place-order or append-items request.
// MenuItemID is nil for ad-hoc items, which routes them to the default
// station.
type ItemSpec struct {
	ItemID     kernel.UUID
	MenuItemID *kernel.UUID
	Name       string
	Quantity   int
	Notes      *string
	Seat       *int
}

func newItemsFromSpecs(specs []ItemSpec) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewItem(spec.ItemID, spec.MenuItemID, spec.Name, spec.Quantity, spec.Notes, spec.Seat)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
