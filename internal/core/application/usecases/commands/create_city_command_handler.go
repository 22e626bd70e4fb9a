package commands

import (
	"context"

	"dispatch/internal/core/domain/model/city"
)

// CreateCityCommandHandler registers cities.
type CreateCityCommandHandler struct {
	uowFactory CityUoWFactory
}

// NewCreateCityCommandHandler creates a handler for city registration.
func NewCreateCityCommandHandler(uowFactory CityUoWFactory) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the city and persists it within a transaction.
func (h CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) error {
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

	entity, err := city.NewCity(cmd.CityID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.CityRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
