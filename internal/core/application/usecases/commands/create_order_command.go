package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer ordering from a restaurant for a
// given delivery time.
//
// The customer is identified by name. When no customer with that name exists
// yet, the command's customer is registered as is.
//
// Example:
//
//	beethoven, _ := customer.NewCustomer(kernel.NewUUID(), "Beethoven", tlv.ID(), "")
//	cmd, err := NewCreateOrderCommand(beethoven, vegan.ID(), time.Now().Add(2*time.Hour))
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	d, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer     *customer.Customer
	restaurantID kernel.UUID
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Every failure wraps services.ErrInvalidInput.
func NewCreateOrderCommand(
	c *customer.Customer,
	restaurantID kernel.UUID,
	deliveryTime time.Time,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomer(c),
		command.setRestaurantID(restaurantID),
		command.setDeliveryTime(deliveryTime),
	); err != nil {
		return CreateOrderCommand{}, fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer as supplied by the caller.
func (c CreateOrderCommand) Customer() *customer.Customer {
	return c.customer
}

// RestaurantID returns the restaurant to order from.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryTime returns when the order must reach the customer.
func (c CreateOrderCommand) DeliveryTime() time.Time {
	return c.deliveryTime
}

func (c *CreateOrderCommand) setCustomer(value *customer.Customer) error {
	if value == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := value.Validate(); err != nil {
		return err
	}

	c.customer = value
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	c.deliveryTime = at
	return nil
}
