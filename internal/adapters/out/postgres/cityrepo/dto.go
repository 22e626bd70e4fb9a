// Package cityrepo persists cities with GORM.
package cityrepo

import (
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CityDTO represents the database structure for persisting cities.
type CityDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default "city_dtos".
func (CityDTO) TableName() string {
	return "cities"
}

func fromDomain(c *city.City) CityDTO {
	return CityDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func toDomain(dto CityDTO) (*city.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return city.NewCity(id, dto.Name)
}
