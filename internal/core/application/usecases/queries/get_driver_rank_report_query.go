package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDriverRankReportQueryIsNotConstructed = errors.New(
		"GetDriverRankReportQuery must be created via NewGetDriverRankReportQuery constructor",
	)
	ErrGetDriverRankReportByCityQueryIsNotConstructed = errors.New(
		"GetDriverRankReportByCityQuery must be created via NewGetDriverRankReportByCityQuery constructor",
	)
)

// GetDriverRankReportQuery requests the total delivered distance of every
// driver with at least one delivery, largest total first.
//
// Example:
//
//	query := NewGetDriverRankReportQuery()
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//
//	for i, row := range rows {
//	    fmt.Printf("%d. %s %.2f km\n", i+1, row.Driver.Name(), row.TotalDistance)
//	}
type GetDriverRankReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriverRankReportQuery creates the global report query.
func NewGetDriverRankReportQuery() GetDriverRankReportQuery {
	return GetDriverRankReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRankReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRankReportQueryIsNotConstructed)
}

// GetDriverRankReportByCityQuery restricts the report to drivers based in one city.
type GetDriverRankReportByCityQuery struct {
	cityID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetDriverRankReportByCityQuery creates the per-city report query.
func NewGetDriverRankReportByCityQuery(cityID kernel.UUID) (GetDriverRankReportByCityQuery, error) {
	if err := cityID.Validate(); err != nil {
		return GetDriverRankReportByCityQuery{}, err
	}
	return GetDriverRankReportByCityQuery{cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRankReportByCityQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRankReportByCityQueryIsNotConstructed)
}

// CityID returns the city the report is restricted to.
func (q GetDriverRankReportByCityQuery) CityID() kernel.UUID {
	return q.cityID
}
