package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	kitchenhttp "kitchen/internal/adapters/in/http"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context, locationID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, locationID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) DeleteServedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStationRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*station.Station), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) GetAllByLocation(ctx context.Context, locationID kernel.UUID) ([]*station.Station, error) {
	args := m.Called(ctx, locationID)
	if stations := args.Get(0); stations != nil {
		return stations.([]*station.Station), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) GetDefault(ctx context.Context, locationID kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, locationID)
	if s := args.Get(0); s != nil {
		return s.(*station.Station), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) RoutingTable(ctx context.Context, locationID kernel.UUID) (station.RoutingTable, error) {
	args := m.Called(ctx, locationID)
	if table := args.Get(0); table != nil {
		return table.(station.RoutingTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) SetItemRouting(ctx context.Context, menuItemID kernel.UUID, stationIDs []kernel.UUID) error {
	args := m.Called(ctx, menuItemID, stationIDs)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	args := m.Called()
	return args.Get(0).(commands.StationUoW)
}

type nopNotifier struct{}

func (nopNotifier) NotifyReady(context.Context, ports.ReadyAlert) error { return nil }

type nopPublisher struct{}

func (nopPublisher) OrderChanged(*order.Order) {}

type nopStream struct{}

func (nopStream) Subscribe(ctx context.Context, locationID kernel.UUID) <-chan *order.Order {
	ch := make(chan *order.Order)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer wires a server around mocked unit of work factories. Query
// handlers get no database; the tests here never reach them.
func newTestServer(orderFactory commands.OrderUoWFactory, stationFactory commands.StationUoWFactory) *echo.Echo {
	server := kitchenhttp.NewServer(
		commands.NewPlaceOrderCommandHandler(orderFactory, nopPublisher{}),
		commands.NewAppendItemsCommandHandler(orderFactory, nopPublisher{}),
		commands.NewTransitionItemsCommandHandler(orderFactory, nopNotifier{}, nopPublisher{}, testLogger()),
		commands.NewAddStationCommandHandler(stationFactory),
		commands.NewRemoveStationCommandHandler(stationFactory),
		commands.NewSetItemRoutingCommandHandler(stationFactory),
		queries.NewGetActiveOrdersQueryHandler(nil),
		queries.NewListVisibleOrdersQueryHandler(nil),
		queries.NewListStationsQueryHandler(nil),
		queries.NewGetStationQueryHandler(nil),
		nopStream{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func orderUoW(repo *MockOrderRepository) (*MockOrderUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}

func stationUoW(repo *MockStationRepository) *MockStationUoWFactory {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("StationRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockStationUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrder_Created(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	orderFactory, _ := orderUoW(repo)
	e := newTestServer(orderFactory, new(MockStationUoWFactory))

	body := `{
		"location_id": "` + kernel.NewUUID().String() + `",
		"fulfillment": "takeout",
		"staff_id": "` + kernel.NewUUID().String() + `",
		"items": [{"name": "carbonara", "quantity": 2}]
	}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := kernel.UUIDFromString(resp.ID)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPlaceOrder_InvalidFulfillment(t *testing.T) {
	e := newTestServer(new(MockOrderUoWFactory), new(MockStationUoWFactory))

	body := `{
		"location_id": "` + kernel.NewUUID().String() + `",
		"fulfillment": "drive_through",
		"staff_id": "` + kernel.NewUUID().String() + `",
		"items": [{"name": "carbonara", "quantity": 1}]
	}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	e := newTestServer(new(MockOrderUoWFactory), new(MockStationUoWFactory))

	body := `{
		"location_id": "` + kernel.NewUUID().String() + `",
		"fulfillment": "takeout",
		"staff_id": "` + kernel.NewUUID().String() + `",
		"items": []
	}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppendItems_NoContent(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), nil, "tiramisu", 1, nil, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
		kernel.NewUUID(), time.Now().UTC(), []*order.Item{item})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return(o, nil).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	orderFactory, _ := orderUoW(repo)
	e := newTestServer(orderFactory, new(MockStationUoWFactory))

	body := `{"items": [{"name": "espresso", "quantity": 2}]}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/items", body)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, o.Items(), 2)
	repo.AssertExpectations(t)
}

func TestAppendItems_UnknownOrder(t *testing.T) {
	orderID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()
	orderFactory, _ := orderUoW(repo)
	e := newTestServer(orderFactory, new(MockStationUoWFactory))

	body := `{"items": [{"name": "espresso", "quantity": 1}]}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/items", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransitionItems_IllegalStepConflicts(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), nil, "carbonara", 1, nil, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
		kernel.NewUUID(), time.Now().UTC(), []*order.Item{item})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return(o, nil).Once()
	orderFactory, _ := orderUoW(repo)
	e := newTestServer(orderFactory, new(MockStationUoWFactory))

	// Ready straight from pending skips preparing.
	body := `{"item_ids": ["` + item.ID().String() + `"]}`
	target := "/api/v1/stations/" + kernel.NewUUID().String() + "/orders/" + o.ID().String() + "/ready"
	rec := doJSON(e, http.MethodPost, target, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddStation_Created(t *testing.T) {
	repo := new(MockStationRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*station.Station")).Return(nil).Once()
	e := newTestServer(new(MockOrderUoWFactory), stationUoW(repo))

	body := `{"name": "grill", "sort_order": 2}`
	rec := doJSON(e, http.MethodPost, "/api/v1/locations/"+kernel.NewUUID().String()+"/stations", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertExpectations(t)
}

func TestAddStation_SecondDefaultConflicts(t *testing.T) {
	locationID := kernel.NewUUID()
	existing, err := station.NewStation(kernel.NewUUID(), locationID, "expo", 0, true)
	require.NoError(t, err)

	repo := new(MockStationRepository)
	repo.On("GetDefault", mock.Anything, mock.Anything).Return(existing, nil).Once()
	e := newTestServer(new(MockOrderUoWFactory), stationUoW(repo))

	body := `{"name": "pass", "sort_order": 1, "is_default": true}`
	rec := doJSON(e, http.MethodPost, "/api/v1/locations/"+locationID.String()+"/stations", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRemoveStation_NotFound(t *testing.T) {
	stationID := kernel.NewUUID()

	repo := new(MockStationRepository)
	repo.On("Get", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("stationId", stationID.String())).Once()
	e := newTestServer(new(MockOrderUoWFactory), stationUoW(repo))

	target := "/api/v1/locations/" + kernel.NewUUID().String() + "/stations/" + stationID.String()
	rec := doJSON(e, http.MethodDelete, target, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetItemRouting_NoContent(t *testing.T) {
	locationID := kernel.NewUUID()
	s, err := station.NewStation(kernel.NewUUID(), locationID, "grill", 1, false)
	require.NoError(t, err)

	repo := new(MockStationRepository)
	repo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()
	repo.On("SetItemRouting", mock.Anything, mock.Anything, []kernel.UUID{s.ID()}).Return(nil).Once()
	e := newTestServer(new(MockOrderUoWFactory), stationUoW(repo))

	body := `{"location_id": "` + locationID.String() + `", "station_ids": ["` + s.ID().String() + `"]}`
	rec := doJSON(e, http.MethodPut, "/api/v1/menu-items/"+kernel.NewUUID().String()+"/stations", body)

	require.Equal(t, http.StatusNoContent, rec.Code)
	repo.AssertExpectations(t)
}

func TestSetItemRouting_MalformedStationID(t *testing.T) {
	e := newTestServer(new(MockOrderUoWFactory), new(MockStationUoWFactory))

	body := `{"location_id": "` + kernel.NewUUID().String() + `", "station_ids": ["not-a-uuid"]}`
	rec := doJSON(e, http.MethodPut, "/api/v1/menu-items/"+kernel.NewUUID().String()+"/stations", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
