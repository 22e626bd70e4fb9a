package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers drivers. The driver's city must exist.
//
// Example:
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	cmd, _ := NewCreateDriverCommand("Patricia", tlv.ID())
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown city
//	}
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	entity, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.CityID())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
