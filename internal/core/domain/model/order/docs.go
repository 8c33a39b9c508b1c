// Package order provides domain entities and business logic for order management
// in the logistics system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: The settlement state of an order's charges
//
// Key business rules:
//   - Orders must have valid identifiers, non-empty locations, and positive quantity
//   - Order status follows a defined workflow:
//     Pending -> Assigned -> InTransit -> Delivered, with Pending/Assigned -> Rejected
//   - Delivered and Rejected are terminal states
//   - Rejection always carries a non-empty reason
//   - Delivery is confirmed with a one-time code issued at driver assignment;
//     the code comparison is constant-structure and locks after repeated mismatches
//   - A bill total, once set, is immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
