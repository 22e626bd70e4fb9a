// Package city provides the City entity: the geographic grouping that decides
// which drivers may serve which customers and restaurants.
package city

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a city is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCityIsNotConstructed is returned when using an improperly initialized City.
	ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")
)

// City is identified by its UUID; the name is used for display and lookups.
type City struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewCity creates a City. It is also used to restore cities from storage
// since a city carries no state beyond its identity and name.
//
// Example:
//
//	tlv, err := city.NewCity(kernel.NewUUID(), "Tel-Aviv")
func NewCity(id kernel.UUID, name string) (*City, error) {
	c := &City{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the City was created through NewCity.
func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// IsEqual compares cities by identity.
func (c *City) IsEqual(other *City) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the city's unique identifier.
func (c *City) ID() kernel.UUID {
	return c.id
}

// Name returns the city's name.
func (c *City) Name() string {
	return c.name
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
