package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its identifier.
	// Returns errs.ErrObjectNotFound when the restaurant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
