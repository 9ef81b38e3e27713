package cmd

import (
	"log/slog"
	"strconv"
	"time"

	butlerhttp "butler/internal/adapters/in/http"
	"butler/internal/adapters/out/navsim"
	"butler/internal/adapters/out/postgres"
	"butler/internal/core/application/missionctl"
	"butler/internal/core/application/usecases/commands"
	"butler/internal/core/application/usecases/queries"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/core/domain/services"
	"butler/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	registry *waypoint.Registry
	queue    *services.OrderQueue
	journal  *missionctl.Journal
	control  *missionctl.Control
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry, err := buildRegistry(configs)
	if err != nil {
		return nil, err
	}

	queue := services.NewOrderQueue()
	journal := missionctl.NewJournal()

	nav, err := navsim.NewClient(registry, logger, navsim.Config{
		Speed:       parseFloat(configs.RobotSpeed, navsim.DefaultSpeed),
		FailureRate: parseFloat(configs.NavFailureRate, 0),
	})
	if err != nil {
		return nil, err
	}

	control, err := missionctl.NewControl(nav, registry, queue, journal, logger, missionctl.Config{
		RetryBudget:  parseInt(configs.NavRetryBudget, missionctl.DefaultRetryBudget),
		KitchenDwell: time.Duration(parseInt(configs.KitchenDwellMs, 0)) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		queue:      queue,
		journal:    journal,
		control:    control,
	}, nil
}

func (c *CompositionRoot) Control() *missionctl.Control {
	return c.control
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.registry, c.queue, c.control)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.queue, c.control)
}

func (c *CompositionRoot) CreateCancelMissionCommandHandler() commands.CancelMissionCommandHandler {
	return commands.NewCancelMissionCommandHandler(c.control)
}

func (c *CompositionRoot) CreateArchiveDeliveriesCommandHandler() commands.ArchiveDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveDeliveriesCommandHandler(c.journal, f)
}

func (c *CompositionRoot) CreateGetMissionStatusQueryHandler() queries.GetMissionStatusQueryHandler {
	return queries.NewGetMissionStatusQueryHandler(c.control)
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *butlerhttp.Server {
	return butlerhttp.NewServer(
		c.CreateAddOrderCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateCancelMissionCommandHandler(),
		c.CreateGetMissionStatusQueryHandler(),
		c.CreateGetDeliveryHistoryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.control, c.CreateArchiveDeliveriesCommandHandler(), logger)
}

func buildRegistry(configs Config) (*waypoint.Registry, error) {
	if configs.WaypointsFile == "" {
		return waypoint.DefaultRegistry(), nil
	}
	return waypoint.LoadRegistry(configs.WaypointsFile)
}

func parseFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
