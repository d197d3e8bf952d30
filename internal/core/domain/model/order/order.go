package order

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"funbooks/internal/core/domain/model/product"
	"funbooks/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewMembershipOrder or NewProductsOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewMembershipOrder or NewProductsOrder constructor")
)

// Order is a purchase order submitted by a customer. It is the aggregate the
// business rules inspect.
//
// Order follows these invariants:
//   - orderID and customerID are non-empty
//   - shape is MembershipPurchase or ProductsPurchase, never both and never neither
//   - a MembershipPurchase holds a membership and no products
//   - a ProductsPurchase holds products (possibly none) and no membership
//   - no field changes after construction
//
// The fields are private so the shape invariant cannot be broken from outside
// the package.
type Order struct {
	// id is the caller-supplied order identifier
	id string

	// customerID identifies the purchasing customer
	customerID string

	// shape selects which of membership and products is meaningful
	shape Shape

	// membership is only set for MembershipPurchase
	membership Membership

	// products is only set for ProductsPurchase and owned by the order
	products []product.Product

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewMembershipOrder creates an order that grants the customer a membership.
//
// Parameters:
//   - orderID: order identifier (required)
//   - customerID: customer identifier (required)
//
// Returns:
//   - *Order: the membership order, HasMembership() is true
//   - error: joined validation errors if an identifier is empty
//
// Example:
//
//	o, err := order.NewMembershipOrder("O1", "C1")
//	if err != nil {
//	    return err
//	}
//	o.HasMembership()       // true
//	o.HasPhysicalProducts() // false
func NewMembershipOrder(orderID, customerID string) (*Order, error) {
	o := &Order{
		shape:         MembershipPurchase,
		membership:    NewMembership(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(orderID),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewProductsOrder creates an order for a list of products. The list may be
// empty; it is copied, so later changes to the caller's slice do not reach the
// order.
//
// Parameters:
//   - orderID: order identifier (required)
//   - customerID: customer identifier (required)
//   - products: purchased products, each created via a product factory
//
// Returns:
//   - *Order: the products order, HasMembership() is false
//   - error: joined validation errors for empty identifiers or zero-value products
//
// Example:
//
//	dune, _ := product.NewPhysicalBook("Dune")
//	neuromancer, _ := product.NewDigitalBook("Neuromancer")
//	o, err := order.NewProductsOrder("O1", "C1", []product.Product{dune, neuromancer})
func NewProductsOrder(orderID, customerID string, products []product.Product) (*Order, error) {
	o := &Order{
		shape:         ProductsPurchase,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(orderID),
		o.setCustomerID(customerID),
		o.setProducts(products),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order is nil or was built as a struct literal
//   - errs.ValueIsInvalidError if the shape is not one of the two purchase kinds
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return o.shape.Validate()
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Shape returns which kind of purchase the order represents.
func (o *Order) Shape() Shape {
	return o.shape
}

// Membership returns the membership granted by the order.
// The boolean is false for products orders.
func (o *Order) Membership() (Membership, bool) {
	return o.membership, o.HasMembership()
}

// HasMembership reports whether the order grants a membership.
func (o *Order) HasMembership() bool {
	return o.shape == MembershipPurchase
}

// Products returns a copy of the ordered products. It is empty for membership orders.
func (o *Order) Products() []product.Product {
	return slices.Clone(o.products)
}

// HasPhysicalProducts reports whether at least one product has to be shipped.
func (o *Order) HasPhysicalProducts() bool {
	return slices.ContainsFunc(o.products, product.Product.IsPhysical)
}

// PhysicalProducts yields the products that have to be shipped, in order.
// The sequence is evaluated lazily on every iteration.
//
// Example:
//
//	for p := range o.PhysicalProducts() {
//	    fmt.Println(p.Title())
//	}
//
//	shippable := slices.Collect(o.PhysicalProducts())
func (o *Order) PhysicalProducts() iter.Seq[product.Product] {
	return func(yield func(product.Product) bool) {
		for _, p := range o.products {
			if !p.IsPhysical() {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setProducts(products []product.Product) error {
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
	}
	o.products = slices.Clone(products)
	return nil
}
