package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDrivers handles GET /api/v1/drivers[?cityId=].
func (s *Server) GetDrivers(ctx echo.Context) error {
	var cityID *kernel.UUID
	if raw := ctx.QueryParam("cityId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid cityId")
		}
		cityID = &id
	}

	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery(cityID))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{ID: d.ID.String(), Name: d.Name, CityID: d.CityID.String()}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverDeliveries handles GET /api/v1/drivers/:id/deliveries.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetDriverDeliveriesQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.handlers.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = toScheduledDelivery(driverID.String(), d)
	}

	return ctx.JSON(http.StatusOK, response)
}
