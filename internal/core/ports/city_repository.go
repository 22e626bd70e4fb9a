package ports

import (
	"context"

	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/kernel"
)

// CityRepository defines the persistence contract for cities.
type CityRepository interface {
	// Add persists a new city. The city must be valid.
	Add(ctx context.Context, aggregate *city.City) error

	// Get retrieves a city by its identifier.
	// Returns errs.ErrObjectNotFound when the city does not exist.
	Get(ctx context.Context, id kernel.UUID) (*city.City, error)
}
