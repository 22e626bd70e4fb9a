package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

// OrderValidator checks the business rules an order must satisfy before a
// driver is looked for.
//
// Business rules, checked in this order:
//   - customer, restaurant and delivery time are present (ErrInvalidInput)
//   - customer and restaurant are in the same city (ErrCityMismatch)
//   - the delivery time is strictly after now (ErrPastDeliveryTime)
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate returns nil if the order may be placed at now.
func (OrderValidator) Validate(c *customer.Customer, r *restaurant.Restaurant, deliveryTime, now time.Time) error {
	if err := CheckRequired(c, r, deliveryTime); err != nil {
		return err
	}

	if !c.CityID().IsEqual(r.CityID()) {
		return ErrCityMismatch
	}

	if !deliveryTime.After(now) {
		return fmt.Errorf("%w: %s is not after %s",
			ErrPastDeliveryTime, deliveryTime.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	return nil
}

// CheckRequired returns ErrInvalidInput, joined with the specific cause, when
// any of the order parameters is missing or not properly constructed.
func CheckRequired(c *customer.Customer, r *restaurant.Restaurant, deliveryTime time.Time) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs.NewValueIsRequiredErrorWithCause("customer", err))
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs.NewValueIsRequiredErrorWithCause("restaurant", err))
	}
	if deliveryTime.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs.NewValueIsRequiredError("delivery time"))
	}
	return nil
}
