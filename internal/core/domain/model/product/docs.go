// Package product provides the Product value object for the purchase-order domain.
//
// A Product is immutable once constructed. Each product category has its own
// factory that fixes whether the item is physical (requires shipping) or digital:
//   - NewPhysicalBook: a book that is shipped
//   - NewDigitalBook: a book that is delivered electronically
//
// Kind records the product category. Only Book exists today; the field is kept
// on every product so further categories can be added without changing callers.
package product
