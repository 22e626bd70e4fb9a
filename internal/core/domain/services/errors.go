package services

import "errors"

// Dispatch failures. They describe invalid requests or exhausted capacity,
// never transient faults, so callers must not retry them.
var (
	// ErrInvalidInput is returned when the customer, restaurant or delivery time is missing.
	ErrInvalidInput = errors.New("invalid input: customer, restaurant and delivery time are required")
	// ErrCityMismatch is returned when the restaurant is not in the customer's city.
	ErrCityMismatch = errors.New("restaurant is not in the customer's city")
	// ErrPastDeliveryTime is returned when the delivery time is not after the current time.
	ErrPastDeliveryTime = errors.New("delivery time must be in the future")
	// ErrNoDriversInCity is returned when no driver serves the customer's city.
	ErrNoDriversInCity = errors.New("no drivers in city")
	// ErrNoFreeDrivers is returned when every driver in the city is busy around the delivery time.
	ErrNoFreeDrivers = errors.New("no free drivers in city")
	// ErrNoCandidates is returned when the least busy selection runs on an empty set.
	ErrNoCandidates = errors.New("no candidate drivers to select from")
)
