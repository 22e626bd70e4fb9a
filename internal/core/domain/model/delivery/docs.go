// Package delivery provides the Delivery aggregate: the record created when a
// driver is assigned to an order.
//
// Key business rules:
//   - A delivery references exactly one driver, restaurant and customer
//   - The delivery time and distance are fixed at creation
//   - Deliveries are immutable: there is no update or cancel path
//   - Two deliveries of the same driver conflict when they are less than
//     BusyWindow apart; exactly BusyWindow apart does not conflict
package delivery
