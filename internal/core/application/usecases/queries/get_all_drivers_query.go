package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists drivers, optionally only those of one city.
//
// Example:
//
//	query := NewGetAllDriversQuery(nil)        // every driver
//	query = NewGetAllDriversQuery(&tlvID)      // Tel-Aviv only
//	drivers, err := handler.Handle(ctx, query)
type GetAllDriversQuery struct {
	cityID *kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetAllDriversQuery creates the query. A nil cityID lists every driver.
func NewGetAllDriversQuery(cityID *kernel.UUID) GetAllDriversQuery {
	return GetAllDriversQuery{cityID: cityID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// CityID returns the city filter, or nil when there is none.
func (q GetAllDriversQuery) CityID() *kernel.UUID {
	return q.cityID
}

// GetAllDriversQueryResponse is the read model of one driver.
type GetAllDriversQueryResponse struct {
	ID     kernel.UUID
	Name   string
	CityID kernel.UUID
}
