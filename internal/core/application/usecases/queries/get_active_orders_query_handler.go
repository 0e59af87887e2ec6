package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the location-wide active set from the
// database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active-set queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first with their full
// item sequences and the canonical derived status.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := loadActiveOrders(ctx, h.db, query.LocationID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		status, statusErr := o.Status()
		if statusErr != nil {
			return nil, statusErr
		}
		responses = append(responses, orderResponse(o, o.Items(), status))
	}

	return responses, nil
}
