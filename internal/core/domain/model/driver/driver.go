package driver

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver delivers orders within a single city.
//
// Business rules:
//   - Driver must have a valid UUID, a non-empty name and a valid city
//   - The city never changes after registration
//
// Example usage:
//
//	mary, err := driver.NewDriver(kernel.NewUUID(), "Mary", tlv.ID())
//	if err != nil {
//	    // Handle construction error
//	}
//	mary.InCity(tlv.ID()) // true
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// cityID is the city the driver serves
	cityID kernel.UUID
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver. Errors for every invalid argument are joined.
func NewDriver(id kernel.UUID, name string, cityID kernel.UUID) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCityID(cityID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was created through NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// CityID returns the identifier of the city the driver serves.
func (d *Driver) CityID() kernel.UUID {
	return d.cityID
}

// InCity reports whether the driver serves cityID.
func (d *Driver) InCity(cityID kernel.UUID) bool {
	return d.cityID.IsEqual(cityID)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	d.cityID = cityID
	return nil
}
