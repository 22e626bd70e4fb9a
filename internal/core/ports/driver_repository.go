package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	// Add persists a new driver. The driver must be valid.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its identifier.
	// Returns errs.ErrObjectNotFound when the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllByCity retrieves every driver based in the city, ordered by ID.
	//
	// Inside a transaction the returned rows stay locked until commit or
	// rollback, so concurrent dispatches in the same city are serialized.
	// Outside a transaction the lock is released immediately.
	//
	// Example:
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   drivers, err := uow.DriverRepository().GetAllByCity(ctx, cityID)
	//   if err != nil {
	//       return fmt.Errorf("failed to load drivers: %w", err)
	//   }
	GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error)
}
