// Package http exposes the station terminal API: order ingestion, the
// per-station working queues, item state transitions and the configuration
// surface for stations and routing.
package http

import (
	"context"
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrderStream delivers committed order changes for a location. The events
// hub implements it.
type OrderStream interface {
	Subscribe(ctx context.Context, locationID kernel.UUID) <-chan *order.Order
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	appendItemsHandler     commands.AppendItemsCommandHandler
	transitionItemsHandler commands.TransitionItemsCommandHandler
	addStationHandler      commands.AddStationCommandHandler
	removeStationHandler   commands.RemoveStationCommandHandler
	setItemRoutingHandler  commands.SetItemRoutingCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	listVisibleOrdersHandler queries.ListVisibleOrdersQueryHandler
	listStationsHandler      queries.ListStationsQueryHandler
	getStationHandler        queries.GetStationQueryHandler

	stream OrderStream
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	appendItemsHandler commands.AppendItemsCommandHandler,
	transitionItemsHandler commands.TransitionItemsCommandHandler,
	addStationHandler commands.AddStationCommandHandler,
	removeStationHandler commands.RemoveStationCommandHandler,
	setItemRoutingHandler commands.SetItemRoutingCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	listVisibleOrdersHandler queries.ListVisibleOrdersQueryHandler,
	listStationsHandler queries.ListStationsQueryHandler,
	getStationHandler queries.GetStationQueryHandler,
	stream OrderStream,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		appendItemsHandler:       appendItemsHandler,
		transitionItemsHandler:   transitionItemsHandler,
		addStationHandler:        addStationHandler,
		removeStationHandler:     removeStationHandler,
		setItemRoutingHandler:    setItemRoutingHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		listVisibleOrdersHandler: listVisibleOrdersHandler,
		listStationsHandler:      listStationsHandler,
		getStationHandler:        getStationHandler,
		stream:                   stream,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.POST("/orders/:orderId/items", s.AppendItems)

	v1.GET("/locations/:locationId/orders", s.GetActiveOrders)
	v1.GET("/locations/:locationId/stations", s.ListStations)
	v1.POST("/locations/:locationId/stations", s.AddStation)
	v1.DELETE("/locations/:locationId/stations/:stationId", s.RemoveStation)

	v1.GET("/stations/:stationId/orders", s.ListStationOrders)
	v1.POST("/stations/:stationId/orders/:orderId/start", s.StartItems)
	v1.POST("/stations/:stationId/orders/:orderId/ready", s.MarkItemsReady)
	v1.POST("/stations/:stationId/orders/:orderId/served", s.MarkItemsServed)
	v1.GET("/stations/:stationId/stream", s.StreamStationOrders)

	v1.PUT("/menu-items/:menuItemId/stations", s.SetItemRouting)
}

// Error is the JSON error body for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses: invalid transitions
// and configuration conflicts are 409, unknown objects 404, bad input 400.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrDefaultStationAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
