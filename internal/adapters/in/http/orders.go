package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places an order and assigns a driver.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := kernel.UUIDFromString(body.CustomerCityID)
	if err != nil {
		return badRequest(ctx, "Invalid customerCityId")
	}
	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurantId")
	}

	orderer, err := customer.NewCustomer(kernel.NewUUID(), body.CustomerName, cityID, body.CustomerAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderer, restaurantID, body.DeliveryTime)
	if err != nil {
		return respondError(ctx, err)
	}

	d, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDelivery(d))
}
