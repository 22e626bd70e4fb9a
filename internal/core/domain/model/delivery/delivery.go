package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// BusyWindow is how long before and after a scheduled delivery its driver is unavailable.
const BusyWindow = time.Hour

var (
	// ErrDeliveryTimeIsRequired is returned when the delivery time is the zero time.
	ErrDeliveryTimeIsRequired = errs.NewValueIsRequiredError("delivery time")
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is an order assigned to a driver.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), mary.ID(), vegan.ID(), beethoven.ID(), at, distance)
//	if err != nil {
//	    // invalid references or time
//	}
//	d.Conflicts(at.Add(30 * time.Minute)) // true
//	d.Conflicts(at.Add(time.Hour))        // false
type Delivery struct {
	id           kernel.UUID
	driverID     kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID
	deliveryTime time.Time
	distance     kernel.Distance
	guard        guard.ConstructorGuard
}

// NewDelivery creates a Delivery. It is also used to restore persisted deliveries,
// which carry no state beyond what they were created with.
//
// Parameters:
//   - id: Unique identifier of the delivery
//   - driverID, restaurantID, customerID: References to the participating entities
//   - deliveryTime: When the order must reach the customer (must not be zero)
//   - distance: Route distance generated at dispatch
//
// Returns:
//   - *Delivery: The created delivery
//   - error: Joined validation errors for every invalid argument
func NewDelivery(
	id kernel.UUID,
	driverID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	deliveryTime time.Time,
	distance kernel.Distance,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		setReference(&d.driverID, "driver", driverID),
		setReference(&d.restaurantID, "restaurant", restaurantID),
		setReference(&d.customerID, "customer", customerID),
		d.setDeliveryTime(deliveryTime),
		d.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// DriverID returns the assigned driver.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// RestaurantID returns the restaurant the order is picked up from.
func (d *Delivery) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// CustomerID returns the customer the order is delivered to.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// DeliveryTime returns when the order must reach the customer.
func (d *Delivery) DeliveryTime() time.Time {
	return d.deliveryTime
}

// Distance returns the generated route distance.
func (d *Delivery) Distance() kernel.Distance {
	return d.distance
}

// Conflicts reports whether a new delivery at the given time would overlap this one,
// i.e. whether the two times are strictly less than BusyWindow apart.
func (d *Delivery) Conflicts(at time.Time) bool {
	return at.After(d.deliveryTime.Add(-BusyWindow)) && at.Before(d.deliveryTime.Add(BusyWindow))
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setDeliveryTime(at time.Time) error {
	if at.IsZero() {
		return ErrDeliveryTimeIsRequired
	}
	d.deliveryTime = at
	return nil
}

func (d *Delivery) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	d.distance = distance
	return nil
}

func setReference(dst *kernel.UUID, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
