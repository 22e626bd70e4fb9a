package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCity handles POST /api/v1/cities.
func (s *Server) CreateCity(ctx echo.Context) error {
	var body NewCity
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCityCommand(body.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateCity.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.CityID().String()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := kernel.UUIDFromString(body.CityID)
	if err != nil {
		return badRequest(ctx, "Invalid cityId")
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, cityID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DriverID().String()})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := kernel.UUIDFromString(body.CityID)
	if err != nil {
		return badRequest(ctx, "Invalid cityId")
	}

	cmd, err := commands.NewCreateRestaurantCommand(body.Name, cityID, body.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.RestaurantID().String()})
}
