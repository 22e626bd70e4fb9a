package queries

import (
	"context"
	"database/sql"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const driverRankReportSQL = `
	SELECT
		d.id,
		d.name,
		d.city_id,
		SUM(dl.distance) AS total_distance
	FROM deliveries dl
	JOIN drivers d ON d.id = dl.driver_id
	%s
	GROUP BY d.id, d.name, d.city_id
	ORDER BY total_distance DESC, d.id
`

// GetDriverRankReportQueryHandler aggregates delivered distance per driver
// across all cities.
//
// Example:
//
//	handler := NewGetDriverRankReportQueryHandler(db)
//	rows, err := handler.Handle(ctx, NewGetDriverRankReportQuery())
type GetDriverRankReportQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverRankReportQueryHandler creates a handler for the global report.
func NewGetDriverRankReportQueryHandler(db *gorm.DB) GetDriverRankReportQueryHandler {
	return GetDriverRankReportQueryHandler{db: db}
}

// Handle returns one row per driver with deliveries, ordered by total distance
// descending and then by driver ID. Drivers without deliveries are omitted.
func (h GetDriverRankReportQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRankReportQuery,
) ([]report.DriverDistance, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(driverRankReportSQL, "")).Rows()
	if err != nil {
		return nil, err
	}

	return scanDriverDistances(rows)
}

// GetDriverRankReportByCityQueryHandler aggregates delivered distance per
// driver for drivers based in one city.
type GetDriverRankReportByCityQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverRankReportByCityQueryHandler creates a handler for the per-city report.
func NewGetDriverRankReportByCityQueryHandler(db *gorm.DB) GetDriverRankReportByCityQueryHandler {
	return GetDriverRankReportByCityQueryHandler{db: db}
}

// Handle returns the report restricted to the query's city. An unknown city
// yields an empty report.
func (h GetDriverRankReportByCityQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRankReportByCityQuery,
) ([]report.DriverDistance, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(fmt.Sprintf(driverRankReportSQL, "WHERE d.city_id = ?"), query.CityID().Bytes()).
		Rows()
	if err != nil {
		return nil, err
	}

	return scanDriverDistances(rows)
}

func scanDriverDistances(rows *sql.Rows) ([]report.DriverDistance, error) {
	defer rows.Close()

	result := make([]report.DriverDistance, 0)
	for rows.Next() {
		var (
			id, cityID uuid.UUID
			name       string
			total      float64
		)
		if err := rows.Scan(&id, &name, &cityID, &total); err != nil {
			return nil, err
		}

		driverID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		driverCityID, err := kernel.UUIDFromBytes(cityID[:])
		if err != nil {
			return nil, err
		}
		d, err := driver.NewDriver(driverID, name, driverCityID)
		if err != nil {
			return nil, err
		}

		result = append(result, report.DriverDistance{Driver: d, TotalDistance: total})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// SQL already orders the rows; Rank keeps the tie-break identical to the domain rule.
	return report.Rank(result), nil
}
