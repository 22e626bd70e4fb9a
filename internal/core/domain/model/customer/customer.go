// Package customer provides the Customer entity. Customers are looked up by
// name, which is their natural key, and may be registered implicitly when
// they place their first order.
package customer

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a customer has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a person ordering food. The customer's city decides which
// restaurants they may order from and which drivers can deliver to them.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is unique across customers and used for lookups
	name string
	// cityID references the city the customer lives in
	cityID kernel.UUID
	// address is free text, not validated
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a Customer.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Unique customer name (must be non-empty)
//   - cityID: City the customer belongs to (must be valid UUID)
//   - address: Optional free-text address
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Beethoven", tlv.ID(), "Ludwig van Beethoven")
func NewCustomer(id kernel.UUID, name string, cityID kernel.UUID, address string) (*Customer, error) {
	c := &Customer{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's unique name.
func (c *Customer) Name() string {
	return c.name
}

// CityID returns the identifier of the customer's city.
func (c *Customer) CityID() kernel.UUID {
	return c.cityID
}

// Address returns the free-text address.
func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	c.cityID = cityID
	return nil
}
