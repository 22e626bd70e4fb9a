package postgres

import (
	"fmt"

	"dispatch/internal/adapters/out/postgres/cityrepo"
	"dispatch/internal/adapters/out/postgres/customerrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Tables lists every table managed by Migrate, in dependency-free order.
var Tables = []string{"deliveries", "drivers", "restaurants", "customers", "cities"}

// Migrate creates or updates the schema of every persisted aggregate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&cityrepo.CityDTO{},
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
