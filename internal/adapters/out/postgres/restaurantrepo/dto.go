// Package restaurantrepo persists restaurants with GORM.
package restaurantrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text"`
}

// TableName overrides GORM's default "restaurant_dtos".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		CityID:      r.CityID().Bytes(),
		Description: r.Description(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(id, dto.Name, cityID, dto.Description)
}
