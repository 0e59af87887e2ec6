package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrListVisibleOrdersQueryIsNotConstructed = errors.New(
	"ListVisibleOrdersQuery must be created via NewListVisibleOrdersQuery constructor",
)

// ListVisibleOrdersQuery retrieves one station's working queue: the active
// orders with only the items routed to the station, each order's status
// derived from that visible subset. Orders with no visible items are
// excluded entirely.
//
// Example:
//
//	query, err := NewListVisibleOrdersQuery(stationID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListVisibleOrdersQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range view {
//	    fmt.Printf("%s: %s (%d items)\n", o.ID, o.Status, len(o.Items))
//	}
type ListVisibleOrdersQuery struct {
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListVisibleOrdersQuery creates a query for a station's visible orders.
func NewListVisibleOrdersQuery(stationID kernel.UUID) (ListVisibleOrdersQuery, error) {
	if err := stationID.Validate(); err != nil {
		return ListVisibleOrdersQuery{}, err
	}

	return ListVisibleOrdersQuery{
		stationID: stationID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVisibleOrdersQueryIsNotConstructed)
}

// StationID returns the station whose queue is read.
func (q ListVisibleOrdersQuery) StationID() kernel.UUID {
	return q.stationID
}
