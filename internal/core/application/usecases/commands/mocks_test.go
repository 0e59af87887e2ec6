package commands_test

import (
	"context"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

// MockUoW serves as OrderUoW, StationUoW and UoW in handler tests.
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

type MockReadyNotifier struct{ mock.Mock }

func (m *MockReadyNotifier) NotifyReady(ctx context.Context, alert ports.ReadyAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

// recordingPublisher captures published orders without any channel plumbing.
type recordingPublisher struct {
	published []*order.Order
}

func (p *recordingPublisher) OrderChanged(o *order.Order) {
	p.published = append(p.published, o)
}
