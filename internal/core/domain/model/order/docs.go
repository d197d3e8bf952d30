// Package order provides the purchase Order aggregate and the Membership marker.
//
// The package includes:
//   - Order: immutable aggregate holding the order and customer identifiers and
//     either a membership or a list of products
//   - Shape: the discriminator between the two kinds of order
//   - Membership: marker value granting a membership
//
// Key business rules:
//   - An order is built by exactly one of NewMembershipOrder and NewProductsOrder
//   - A membership order never carries products and a products order never
//     carries a membership; no other combination can be constructed
//   - Order and customer identifiers are required
//   - Nothing on an order changes after construction
package order
