package city_test

import (
	"testing"

	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCity(t *testing.T) {
	id := kernel.NewUUID()

	c, err := city.NewCity(id, "Beer-Sheva")

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Beer-Sheva", c.Name())
	assert.True(t, c.ID().IsEqual(id))

	_, err = city.NewCity(kernel.UUID{}, "")
	require.ErrorIs(t, err, city.ErrNameIsRequired)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero *city.City
	require.ErrorIs(t, zero.Validate(), city.ErrCityIsNotConstructed)
}
