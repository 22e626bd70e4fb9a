package commands

import (
	"context"

	"dispatch/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler registers restaurants. The restaurant's city must exist.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CityRepository().Get(ctx, cmd.CityID()); err != nil {
		return err
	}

	entity, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.CityID(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
