// Package services provides domain services that implement the dispatch
// policy across the customer, restaurant, driver and delivery aggregates.
//
// The package includes:
//   - OrderValidator: checks that an order may be placed at all
//   - DriverDispatcher: narrows the drivers of a city to the free ones, picks
//     the least busy of them and builds the resulting delivery
//
// Every failure is reported through one of the sentinel errors in errors.go
// so callers can branch with errors.Is instead of matching messages.
package services
