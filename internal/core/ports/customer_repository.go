package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/customer"
)

// ErrCustomerAlreadyExists is returned by Add when the name is already registered.
var ErrCustomerAlreadyExists = errors.New("customer already exists")

// CustomerRepository defines the persistence contract for customers.
// Customer names are unique and act as the lookup key.
type CustomerRepository interface {
	// Add persists a new customer. Adding a second customer with an existing
	// name fails with ErrCustomerAlreadyExists.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByName retrieves a customer by its unique name.
	// Returns errs.ErrObjectNotFound when nobody is registered under that name.
	//
	// Example:
	//   c, err := repo.GetByName(ctx, "Beethoven")
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       // first order of this customer
	//   }
	GetByName(ctx context.Context, name string) (*customer.Customer, error)
}
