package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetDriverRankReportQuery{}.Validate(),
		queries.ErrGetDriverRankReportQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetDriverRankReportByCityQuery{}.Validate(),
		queries.ErrGetDriverRankReportByCityQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllDriversQuery{}.Validate(),
		queries.ErrGetAllDriversQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetDriverDeliveriesQuery{}.Validate(),
		queries.ErrGetDriverDeliveriesQueryIsNotConstructed)
}

func TestQueries_Constructors(t *testing.T) {
	require.NoError(t, queries.NewGetDriverRankReportQuery().Validate())

	cityID := kernel.NewUUID()
	byCity, err := queries.NewGetDriverRankReportByCityQuery(cityID)
	require.NoError(t, err)
	assert.Equal(t, cityID, byCity.CityID())

	_, err = queries.NewGetDriverRankReportByCityQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	all := queries.NewGetAllDriversQuery(nil)
	require.NoError(t, all.Validate())
	assert.Nil(t, all.CityID())

	_, err = queries.NewGetDriverDeliveriesQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
