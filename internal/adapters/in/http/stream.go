package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StreamStationOrders handles GET /api/v1/stations/:stationId/stream - an
// SSE stream of the station's working queue. The current queue is sent on
// connect and re-sent whenever an order of the station's location changes;
// the connection ends when the client disconnects.
func (s *Server) StreamStationOrders(ctx echo.Context) error {
	stationID, err := pathUUID(ctx, "stationId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStationQuery(stationID)
	if err != nil {
		return respondError(ctx, err)
	}

	station, err := s.getStationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	reqCtx := ctx.Request().Context()
	changes := s.stream.Subscribe(reqCtx, station.LocationID)

	if err := s.writeQueueEvent(ctx, stationID); err != nil {
		return err
	}

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := s.writeQueueEvent(ctx, stationID); err != nil {
				return err
			}
		}
	}
}

// writeQueueEvent renders the station queue and flushes it as one SSE
// event.
func (s *Server) writeQueueEvent(ctx echo.Context, stationID kernel.UUID) error {
	view, err := s.stationView(ctx, stationID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(view)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(ctx.Response(), "event: orders\ndata: %s\n\n", body); err != nil {
		return err
	}
	ctx.Response().Flush()

	return nil
}
