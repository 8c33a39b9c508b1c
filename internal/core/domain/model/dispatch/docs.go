// Package dispatch provides the delivery-side entities of the order lifecycle:
// drivers and the assignments linking them to orders.
//
// The package includes:
//   - Driver: a courier who can be available or busy with one order at a time
//   - Assignment: the record tracking an order's driver, in-transit location,
//     and completion
//   - NewDeliveryCode: issuance of the one-time delivery confirmation code
//
// Key business rules:
//   - An assignment exists if and only if its order is assigned, in transit,
//     or delivered
//   - A busy driver cannot take another order until freed
//   - Completing or releasing an assignment frees its driver
package dispatch
