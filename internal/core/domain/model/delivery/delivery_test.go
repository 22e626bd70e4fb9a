package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T, at time.Time) *delivery.Delivery {
	t.Helper()

	distance, err := kernel.NewDistance(7.5)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), at, distance)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	distance, _ := kernel.NewDistance(3)

	t.Run("should create delivery with all references", func(t *testing.T) {
		id, driverID, restaurantID, customerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		d, err := delivery.NewDelivery(id, driverID, restaurantID, customerID, at, distance)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.DriverID().IsEqual(driverID))
		assert.True(t, d.RestaurantID().IsEqual(restaurantID))
		assert.True(t, d.CustomerID().IsEqual(customerID))
		assert.Equal(t, at, d.DeliveryTime())
		assert.InDelta(t, 3.0, d.Distance().Kilometers(), 1e-9)
	})

	t.Run("should join errors for every invalid argument", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), time.Time{}, kernel.Distance{})

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, delivery.ErrDeliveryTimeIsRequired)
		require.ErrorIs(t, err, kernel.ErrDistanceIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "driver")
	})
}

func TestDelivery_Validate(t *testing.T) {
	var nilDelivery *delivery.Delivery
	require.ErrorIs(t, nilDelivery.Validate(), delivery.ErrDeliveryIsNotConstructed)

	require.ErrorIs(t, (&delivery.Delivery{}).Validate(), delivery.ErrDeliveryIsNotConstructed)
}

func TestDelivery_Conflicts(t *testing.T) {
	at := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	d := newTestDelivery(t, at)

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{name: "same time", offset: 0, want: true},
		{name: "59 minutes later", offset: 59 * time.Minute, want: true},
		{name: "59 minutes earlier", offset: -59 * time.Minute, want: true},
		{name: "one millisecond short of an hour", offset: time.Hour - time.Millisecond, want: true},
		{name: "exactly one hour later", offset: time.Hour, want: false},
		{name: "exactly one hour earlier", offset: -time.Hour, want: false},
		{name: "two hours later", offset: 2 * time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Conflicts(at.Add(tt.offset)))
		})
	}

	t.Run("centuries apart", func(t *testing.T) {
		assert.False(t, d.Conflicts(at.AddDate(300, 0, 0)))
		assert.False(t, d.Conflicts(at.AddDate(-300, 0, 0)))
	})
}
