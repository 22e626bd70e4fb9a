package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// GetDriverDeliveriesQuery lists every delivery of one driver, past and future.
type GetDriverDeliveriesQuery struct {
	driverID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates the query for the given driver.
func NewGetDriverDeliveriesQuery(driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}
	return GetDriverDeliveriesQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are requested.
func (q GetDriverDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverDeliveriesQueryResponse is the read model of one delivery.
type GetDriverDeliveriesQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	DeliveryTime time.Time
	Distance     float64
}
