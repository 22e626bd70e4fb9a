// Package restaurant provides the Restaurant entity.
package restaurant

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrNameIsRequired             = errs.NewValueIsRequiredError("name")
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant prepares the food. Orders may only be placed by customers of the same city.
type Restaurant struct {
	id          kernel.UUID
	name        string
	cityID      kernel.UUID
	description string
	guard       guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant located in cityID.
func NewRestaurant(id kernel.UUID, name string, cityID kernel.UUID, description string) (*Restaurant, error) {
	r := &Restaurant{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) CityID() kernel.UUID {
	return r.cityID
}

func (r *Restaurant) Description() string {
	return r.description
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	r.cityID = cityID
	return nil
}
