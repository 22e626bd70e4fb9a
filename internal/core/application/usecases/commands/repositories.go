// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CityRepoFactory provides access to city repository within a transaction.
	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RestaurantRepoFactory provides access to restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DeliveryRepoFactory provides access to delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CityUoW manages transactions for city provisioning.
	CityUoW interface {
		TxManager
		CityRepoFactory
	}

	// CityUoWFactory creates new city unit of work instances.
	CityUoWFactory interface {
		Create() CityUoW
	}

	// DriverUoW manages transactions for driver provisioning.
	// The city repository is used to check that the driver's city exists.
	DriverUoW interface {
		TxManager
		CityRepoFactory
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RestaurantUoW manages transactions for restaurant provisioning.
	RestaurantUoW interface {
		TxManager
		CityRepoFactory
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// UoW manages transactions across every aggregate involved in order placement.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   drivers, err := uow.DriverRepository().GetAllByCity(ctx, cityID)
	//   // ... choose a driver
	//   err = uow.DeliveryRepository().Add(ctx, d)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CityRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// UoWFactory creates new unit of work instances for order placement.
	UoWFactory interface {
		Create() UoW
	}
)
