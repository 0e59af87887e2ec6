package cmd

import (
	"context"
	"log/slog"
	"time"

	kitchenhttp "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/rabbitmq"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/events"
	"kitchen/internal/jobs"

	"gorm.io/gorm"
)

// defaultArchiveRetention is how long a fully served order stays in the
// active tables when ARCHIVE_RETENTION is not set.
const defaultArchiveRetention = 15 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *events.Hub
	notifier   ports.ReadyNotifier
	retention  time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	retention := defaultArchiveRetention
	if config.ArchiveRetention != "" {
		parsed, err := time.ParseDuration(config.ArchiveRetention)
		if err != nil {
			logger.Warn("invalid ARCHIVE_RETENTION, using default",
				"value", config.ArchiveRetention,
				"default", defaultArchiveRetention.String())
		} else {
			retention = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        events.NewHub(),
		notifier:   createNotifier(config, logger),
		retention:  retention,
		logger:     logger,
	}
}

// createNotifier connects to RabbitMQ for ready alerts. When the broker is
// unreachable the engine still runs: alerts degrade to log lines.
func createNotifier(config Config, logger *slog.Logger) ports.ReadyNotifier {
	notifier, err := rabbitmq.NewNotifier(rabbitmq.Config{
		Host:     config.AmqpHost,
		Port:     config.AmqpPort,
		User:     config.AmqpUser,
		Password: config.AmqpPassword,
	})
	if err != nil {
		logger.Warn("rabbitmq unavailable, ready alerts will only be logged", "error", err)
		return logNotifier{logger: logger.With("component", "ready_notifier")}
	}

	return notifier
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAppendItemsCommandHandler() commands.AppendItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendItemsCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateTransitionItemsCommandHandler() commands.TransitionItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionItemsCommandHandler(f, c.notifier, c.hub, c.logger)
}

func (c *CompositionRoot) CreateArchiveServedOrdersCommandHandler() commands.ArchiveServedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveServedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAddStationCommandHandler() commands.AddStationCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStationCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStationCommandHandler() commands.RemoveStationCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStationCommandHandler(f)
}

func (c *CompositionRoot) CreateSetItemRoutingCommandHandler() commands.SetItemRoutingCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetItemRoutingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVisibleOrdersQueryHandler() queries.ListVisibleOrdersQueryHandler {
	return queries.NewListVisibleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStationsQueryHandler() queries.ListStationsQueryHandler {
	return queries.NewListStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationQueryHandler() queries.GetStationQueryHandler {
	return queries.NewGetStationQueryHandler(c.gormDB)
}

// CreateServer wires the full HTTP surface.
func (c *CompositionRoot) CreateServer() *kitchenhttp.Server {
	return kitchenhttp.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAppendItemsCommandHandler(),
		c.CreateTransitionItemsCommandHandler(),
		c.CreateAddStationCommandHandler(),
		c.CreateRemoveStationCommandHandler(),
		c.CreateSetItemRoutingCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateListVisibleOrdersQueryHandler(),
		c.CreateListStationsQueryHandler(),
		c.CreateGetStationQueryHandler(),
		c.hub,
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateArchiveServedOrdersCommandHandler(), c.retention, c.logger)
}

// Close releases infrastructure owned by the root.
func (c *CompositionRoot) Close() {
	if n, ok := c.notifier.(*rabbitmq.Notifier); ok {
		n.Close()
	}
}

// logNotifier stands in for the broker when it is not configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) NotifyReady(ctx context.Context, alert ports.ReadyAlert) error {
	n.logger.InfoContext(ctx, "order ready for service",
		"order_id", alert.OrderID.String(),
		"staff_id", alert.StaffID.String(),
		"location", alert.Location)
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
