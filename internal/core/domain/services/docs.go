// Package services provides domain services that orchestrate business operations
// across the purchase-order model.
//
// The package includes:
//   - PurchaseOrderService: applies an ordered list of business rules to an order
//
// The service is a flat pipeline: every rule runs once, in the order supplied,
// with no prioritisation, dependencies between rules, or compensation.
package services
