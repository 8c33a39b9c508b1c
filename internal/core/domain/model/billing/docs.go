// Package billing provides the monetary side of the order lifecycle: the pure
// charge calculator and the Bill aggregate.
//
// The package includes:
//   - ComputeCharges: derives base amount, VIP surcharge, and total from order
//     attributes, with no side effects
//   - Bill: the aggregate recording generated charges and collected payments
//
// Key business rules:
//   - Charges are rate-per-unit times quantity plus a flat VIP surcharge
//   - A bill's total always equals base plus surcharge
//   - Payments accumulate; a bill is paid only once the full total is collected
//   - Settled or cancelled bills accept no further payments
package billing
