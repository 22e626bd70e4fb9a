package services

import (
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

// History holds the complete delivery history of each candidate driver, keyed by driver ID.
// Drivers without deliveries may be absent from the map.
type History map[kernel.UUID][]*delivery.Delivery

// DriverDispatcher is a domain service responsible for choosing the driver of
// a new order and building the resulting delivery.
//
// Selection algorithm:
//   - Start from every driver of the customer's city
//   - Drop drivers with a delivery less than delivery.BusyWindow away from the requested time
//   - Among the rest, pick the driver with the fewest deliveries overall
//   - Break ties by the lowest driver ID so the choice never depends on input order
//
// Example usage:
//
//	dispatcher := NewDriverDispatcher(kernel.NewDefaultRandomSource())
//
//	chosen, err := dispatcher.Dispatch(driversInCity, history, deliveryTime)
//	if errors.Is(err, ErrNoFreeDrivers) {
//	    // everybody is busy around deliveryTime
//	    return
//	}
//	d, err := dispatcher.CreateDelivery(chosen, restaurant, customer, deliveryTime)
type DriverDispatcher struct {
	random kernel.RandomSource
}

// NewDriverDispatcher creates a dispatcher drawing delivery distances from random.
func NewDriverDispatcher(random kernel.RandomSource) DriverDispatcher {
	return DriverDispatcher{random: random}
}

// Dispatch selects the driver for an order at the given time.
//
// Returns:
//   - *driver.Driver: The selected driver
//   - error: ErrNoDriversInCity, ErrNoFreeDrivers, or a driver validation error
func (d DriverDispatcher) Dispatch(drivers []*driver.Driver, history History, at time.Time) (*driver.Driver, error) {
	if len(drivers) == 0 {
		return nil, ErrNoDriversInCity
	}

	free, err := d.FilterFree(drivers, history, at)
	if err != nil {
		return nil, err
	}

	return d.SelectLeastBusy(free, history)
}

// FilterFree returns the drivers that have no delivery conflicting with at.
// The relative order of the input is preserved.
func (DriverDispatcher) FilterFree(drivers []*driver.Driver, history History, at time.Time) ([]*driver.Driver, error) {
	free := make([]*driver.Driver, 0, len(drivers))

	for _, drv := range drivers {
		if err := drv.Validate(); err != nil {
			return nil, err
		}

		if !isBusy(history[drv.ID()], at) {
			free = append(free, drv)
		}
	}

	if len(free) == 0 {
		return nil, ErrNoFreeDrivers
	}

	return free, nil
}

// SelectLeastBusy returns the driver with the fewest deliveries in history.
// A single candidate is returned as is; ties go to the lowest driver ID.
func (DriverDispatcher) SelectLeastBusy(drivers []*driver.Driver, history History) (*driver.Driver, error) {
	if len(drivers) == 0 {
		return nil, ErrNoCandidates
	}

	if len(drivers) == 1 {
		if err := drivers[0].Validate(); err != nil {
			return nil, err
		}
		return drivers[0], nil
	}

	var (
		best      *driver.Driver
		bestCount int
	)

	for _, drv := range drivers {
		if err := drv.Validate(); err != nil {
			return nil, err
		}

		count := len(history[drv.ID()])
		if best == nil || count < bestCount ||
			(count == bestCount && drv.ID().Compare(best.ID()) < 0) {
			best = drv
			bestCount = count
		}
	}

	return best, nil
}

// CreateDelivery builds the delivery for the chosen driver with a freshly drawn
// random distance. The delivery is not persisted.
func (d DriverDispatcher) CreateDelivery(
	drv *driver.Driver,
	r *restaurant.Restaurant,
	c *customer.Customer,
	at time.Time,
) (*delivery.Delivery, error) {
	if err := drv.Validate(); err != nil {
		return nil, err
	}
	if err := CheckRequired(c, r, at); err != nil {
		return nil, err
	}

	distance, err := kernel.NewRandomDistance(d.random)
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(kernel.NewUUID(), drv.ID(), r.ID(), c.ID(), at, distance)
}

func isBusy(deliveries []*delivery.Delivery, at time.Time) bool {
	for _, dl := range deliveries {
		if dl.Conflicts(at) {
			return true
		}
	}
	return false
}
