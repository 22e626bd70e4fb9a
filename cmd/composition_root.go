package cmd

import (
	"log/slog"
	"time"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Dispatch
	publisher  *kafka.DeliveryPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	m *metrics.Dispatch,
	publisher *kafka.DeliveryPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    m,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	dispatcher := services.NewDriverDispatcher(kernel.NewDefaultRandomSource())
	handler := commands.NewCreateOrderCommandHandler(f, dispatcher, c.metrics, time.Now)
	if c.publisher != nil {
		handler = handler.WithDeliveryEvents(c.publisher)
	}
	return handler
}

func (c *CompositionRoot) CreateCreateCityCommandHandler() commands.CreateCityCommandHandler {
	var f commands.CityUoWFactory = FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRankReportQueryHandler() queries.GetDriverRankReportQueryHandler {
	return queries.NewGetDriverRankReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRankReportByCityQueryHandler() queries.GetDriverRankReportByCityQueryHandler {
	return queries.NewGetDriverRankReportByCityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		CreateCity:       c.CreateCreateCityCommandHandler(),
		CreateDriver:     c.CreateCreateDriverCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		GetAllDrivers:    c.CreateGetAllDriversQueryHandler(),
		GetDeliveries:    c.CreateGetDriverDeliveriesQueryHandler(),
		RankReport:       c.CreateGetDriverRankReportQueryHandler(),
		CityRankReport:   c.CreateGetDriverRankReportByCityQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDriverRankReportQueryHandler(), c.config.ReportSchedule, c.logger)
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
