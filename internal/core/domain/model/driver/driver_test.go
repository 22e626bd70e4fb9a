package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	cityID := kernel.NewUUID()

	t.Run("should create driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "  Mary ", cityID)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Mary", d.Name())
		assert.True(t, d.InCity(cityID))
		assert.False(t, d.InCity(kernel.NewUUID()))
	})

	testCases := []struct {
		name     string
		id       kernel.UUID
		dName    string
		cityID   kernel.UUID
		expected error
	}{
		{name: "empty name", id: kernel.NewUUID(), dName: " ", cityID: cityID, expected: driver.ErrNameIsRequired},
		{name: "zero id", id: kernel.UUID{}, dName: "Mary", cityID: cityID, expected: kernel.ErrUUIDIsNotConstructed},
		{name: "zero city", id: kernel.NewUUID(), dName: "Mary", cityID: kernel.UUID{}, expected: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := driver.NewDriver(tc.id, tc.dName, tc.cityID)

			require.ErrorIs(t, err, tc.expected)
			assert.Nil(t, d)
		})
	}
}

func TestDriver_IsEqual(t *testing.T) {
	cityID := kernel.NewUUID()
	id := kernel.NewUUID()
	a, _ := driver.NewDriver(id, "Mary", cityID)
	b, _ := driver.NewDriver(id, "Mary again", cityID)
	c, _ := driver.NewDriver(kernel.NewUUID(), "Patricia", cityID)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestDriver_Validate_ZeroValue(t *testing.T) {
	var d driver.Driver

	require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}
