package http

import (
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListStations handles GET /api/v1/locations/:locationId/stations.
func (s *Server) ListStations(ctx echo.Context) error {
	locationID, err := pathUUID(ctx, "locationId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListStationsQuery(locationID)
	if err != nil {
		return respondError(ctx, err)
	}

	stations, err := s.listStationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Station, 0, len(stations))
	for _, station := range stations {
		response = append(response, toStation(station))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddStation handles POST /api/v1/locations/:locationId/stations.
func (s *Server) AddStation(ctx echo.Context) error {
	locationID, err := pathUUID(ctx, "locationId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddStationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	stationID := kernel.NewUUID()
	cmd, err := commands.NewAddStationCommand(stationID, locationID, req.Name, req.SortOrder, req.IsDefault)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addStationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: stationID.String()})
}

// RemoveStation handles DELETE /api/v1/locations/:locationId/stations/:stationId.
// Routing assignments referencing the station are removed with it.
func (s *Server) RemoveStation(ctx echo.Context) error {
	stationID, err := pathUUID(ctx, "stationId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveStationCommand(stationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeStationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetItemRouting handles PUT /api/v1/menu-items/:menuItemId/stations -
// replaces a menu item's station assignment. An empty station list clears
// it.
func (s *Server) SetItemRouting(ctx echo.Context) error {
	menuItemID, err := pathUUID(ctx, "menuItemId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetItemRoutingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("location_id", err))
	}

	stationIDs, err := toUUIDs("station_ids", req.StationIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetItemRoutingCommand(locationID, menuItemID, stationIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setItemRoutingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListStationOrders handles GET /api/v1/stations/:stationId/orders - the
// station's working queue with per-station derived statuses.
func (s *Server) ListStationOrders(ctx echo.Context) error {
	stationID, err := pathUUID(ctx, "stationId")
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.stationView(ctx, stationID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// StartItems handles POST /api/v1/stations/:stationId/orders/:orderId/start.
func (s *Server) StartItems(ctx echo.Context) error {
	return s.transitionItems(ctx, order.Preparing)
}

// MarkItemsReady handles POST /api/v1/stations/:stationId/orders/:orderId/ready.
func (s *Server) MarkItemsReady(ctx echo.Context) error {
	return s.transitionItems(ctx, order.Ready)
}

// MarkItemsServed handles POST /api/v1/stations/:stationId/orders/:orderId/served.
func (s *Server) MarkItemsServed(ctx echo.Context) error {
	return s.transitionItems(ctx, order.Served)
}

// transitionItems advances order items from a station terminal and responds
// with the updated station queue. An empty item list targets every visible
// item currently one step before the target status; when none qualifies the
// request is a no-op.
func (s *Server) transitionItems(ctx echo.Context, target order.ItemStatus) error {
	stationID, err := pathUUID(ctx, "stationId")
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	itemIDs, err := toUUIDs("item_ids", req.ItemIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if len(itemIDs) == 0 {
		itemIDs, err = s.eligibleItems(ctx, stationID, orderID, target)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	if len(itemIDs) > 0 {
		cmd, cmdErr := commands.NewTransitionItemsCommand(orderID, itemIDs, target)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		if handleErr := s.transitionItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return respondError(ctx, handleErr)
		}
	}

	view, err := s.stationView(ctx, stationID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (s *Server) stationView(ctx echo.Context, stationID kernel.UUID) ([]Order, error) {
	query, err := queries.NewListVisibleOrdersQuery(stationID)
	if err != nil {
		return nil, err
	}

	orders, err := s.listVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	return toOrders(orders), nil
}

// eligibleItems resolves a bulk transition: the order's visible items whose
// current status is exactly one step before the target.
func (s *Server) eligibleItems(ctx echo.Context, stationID, orderID kernel.UUID, target order.ItemStatus) ([]kernel.UUID, error) {
	query, err := queries.NewListVisibleOrdersQuery(stationID)
	if err != nil {
		return nil, err
	}

	orders, err := s.listVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	from := previousStatus(target)
	for _, o := range orders {
		if !o.ID.IsEqual(orderID) {
			continue
		}

		itemIDs := make([]kernel.UUID, 0, len(o.Items))
		for _, item := range o.Items {
			if item.Status == from.String() {
				itemIDs = append(itemIDs, item.ID)
			}
		}
		return itemIDs, nil
	}

	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

func previousStatus(target order.ItemStatus) order.ItemStatus {
	switch target {
	case order.Preparing:
		return order.Pending
	case order.Ready:
		return order.Preparing
	case order.Served:
		return order.Ready
	default:
		return order.ItemStatusUnknown
	}
}
