package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
// Deliveries are immutable once stored, so there is no Update.
type DeliveryRepository interface {
	// Add persists a new delivery. The delivery must be valid.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// GetAllByDriver returns the complete delivery history of a driver, past
	// and future, ordered by delivery time. A driver without deliveries yields
	// an empty slice.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error)
}
