package http

import (
	"context"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
)

// Use case ports consumed by the HTTP adapter. The application handlers
// satisfy them directly.
type (
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*delivery.Delivery, error)
	}
	CityCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCityCommand) error
	}
	DriverCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) error
	}
	RestaurantCreator interface {
		Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) error
	}
	DriverLister interface {
		Handle(ctx context.Context, query queries.GetAllDriversQuery) ([]queries.GetAllDriversQueryResponse, error)
	}
	DriverDeliveriesLister interface {
		Handle(
			ctx context.Context,
			query queries.GetDriverDeliveriesQuery,
		) ([]queries.GetDriverDeliveriesQueryResponse, error)
	}
	RankReporter interface {
		Handle(ctx context.Context, query queries.GetDriverRankReportQuery) ([]report.DriverDistance, error)
	}
	CityRankReporter interface {
		Handle(ctx context.Context, query queries.GetDriverRankReportByCityQuery) ([]report.DriverDistance, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder      OrderPlacer
	CreateCity       CityCreator
	CreateDriver     DriverCreator
	CreateRestaurant RestaurantCreator
	GetAllDrivers    DriverLister
	GetDeliveries    DriverDeliveriesLister
	RankReport       RankReporter
	CityRankReport   CityRankReporter
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1 together with the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/cities", s.CreateCity)
	api.POST("/drivers", s.CreateDriver)
	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/:id/deliveries", s.GetDriverDeliveries)
	api.GET("/reports/drivers", s.GetDriverRankReport)
}
