// Package customerrepo persists customers with GORM. The customer name is
// unique and backed by a unique index.
package customerrepo

import (
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CityID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Address string    `gorm:"type:text"`
}

// TableName overrides GORM's default "customer_dtos".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		CityID:  c.CityID().Bytes(),
		Address: c.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name, cityID, dto.Address)
}
