// Package deliveryrepo provides data transfer objects and the GORM repository
// for deliveries.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The driver and time columns are indexed for availability and report lookups.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index:idx_deliveries_driver_time,priority:1"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null"`
	DeliveryTime time.Time `gorm:"type:timestamptz;not null;index:idx_deliveries_driver_time,priority:2"`
	Distance     float64   `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for deliveries.
// Overrides GORM's default naming convention to use "deliveries" instead of "delivery_dtos".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		DriverID:     d.DriverID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		CustomerID:   d.CustomerID().Bytes(),
		DeliveryTime: d.DeliveryTime().UTC(),
		Distance:     d.Distance().Kilometers(),
	}
}

// toDomain converts a database DTO back to a delivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.DriverID, dto.RestaurantID, dto.CustomerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	distance, err := kernel.NewDistance(dto.Distance)
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(ids[0], ids[1], ids[2], ids[3], dto.DeliveryTime, distance)
}
