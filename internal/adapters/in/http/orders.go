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

// PlaceOrder handles POST /api/v1/orders - registers a new guest check.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("location_id", err))
	}
	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("staff_id", err))
	}
	fulfillment, err := order.FulfillmentFromString(req.Fulfillment)
	if err != nil {
		return respondError(ctx, err)
	}
	specs, err := toItemSpecs(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, locationID, fulfillment, req.TableLabel, staffID, specs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AppendItems handles POST /api/v1/orders/:orderId/items - appends lines to
// an open check.
func (s *Server) AppendItems(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AppendItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	specs, err := toItemSpecs(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAppendItemsCommand(orderID, specs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.appendItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/locations/:locationId/orders - the
// canonical active set for expediter and management screens.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	locationID, err := pathUUID(ctx, "locationId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(locationID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}
