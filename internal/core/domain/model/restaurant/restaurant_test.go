package restaurant_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	cityID := kernel.NewUUID()

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "vegan", cityID, "Only vegan")
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, "vegan", r.Name())
	assert.Equal(t, "Only vegan", r.Description())
	assert.True(t, r.CityID().IsEqual(cityID))

	_, err = restaurant.NewRestaurant(kernel.NewUUID(), "", kernel.UUID{}, "")
	require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	assert.Contains(t, err.Error(), "city")

	var zero *restaurant.Restaurant
	require.ErrorIs(t, zero.Validate(), restaurant.ErrRestaurantIsNotConstructed)
}
