package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves driver information with direct SQL.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver listing queries.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle returns the drivers sorted by name, then ID.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("drivers").Select("id, name, city_id")
	if query.CityID() != nil {
		stmt = stmt.Where("city_id = ?", query.CityID().Bytes())
	}

	rows, err := stmt.Order("name, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetAllDriversQueryResponse, 0)
	for rows.Next() {
		var (
			driver     GetAllDriversQueryResponse
			id, cityID uuid.UUID
		)
		if err = rows.Scan(&id, &driver.Name, &cityID); err != nil {
			return nil, err
		}

		if driver.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if driver.CityID, err = kernel.UUIDFromBytes(cityID[:]); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
