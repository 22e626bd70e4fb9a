// Package driver provides the Driver entity of the dispatch domain.
//
// Drivers are provisioned ahead of time and belong to exactly one city.
// A driver is eligible for an order only when the order's customer lives
// in the driver's city and the driver has no other delivery scheduled
// within an hour of the requested time.
package driver
