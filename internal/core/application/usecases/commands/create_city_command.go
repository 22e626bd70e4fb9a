package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateCityCommandIsNotConstructed = errors.New(
		"CreateCityCommand must be created via NewCreateCityCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateCityCommand represents a request to register a city.
// A fresh city ID is generated by the constructor.
//
// Example:
//
//	cmd, err := NewCreateCityCommand("Tel-Aviv")
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create city: %w", err)
//	}
//	fmt.Printf("Created city with ID: %s", cmd.CityID())
type CreateCityCommand struct { //nolint:recvcheck //using for validation
	cityID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateCityCommand creates a command to register a new city.
func NewCreateCityCommand(name string) (CreateCityCommand, error) {
	command := CreateCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCityID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateCityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCityCommandIsNotConstructed)
}

// CityID returns the generated city ID.
func (c CreateCityCommand) CityID() kernel.UUID {
	return c.cityID
}

// Name returns the city name.
func (c CreateCityCommand) Name() string {
	return c.name
}

func (c *CreateCityCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cityID = id
	return nil
}

func (c *CreateCityCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
