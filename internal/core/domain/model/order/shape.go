package order

import (
	"fmt"

	"funbooks/internal/pkg/errs"
)

// Shape identifies which of the two mutually exclusive kinds of purchase an
// order represents. It is fixed by the constructor and never changes.
//
//	MembershipPurchase: membership present, no products
//	ProductsPurchase:   products present (possibly none), no membership
type Shape int

const (
	// Unknown is the zero value and marks an order that was not constructed.
	Unknown Shape = iota

	// MembershipPurchase is an order that grants a membership.
	MembershipPurchase

	// ProductsPurchase is an order for a list of products.
	ProductsPurchase
)

func getShapeStrings() map[Shape]string {
	return map[Shape]string{
		Unknown:            "Unknown",
		MembershipPurchase: "MembershipPurchase",
		ProductsPurchase:   "ProductsPurchase",
	}
}

// Validate checks that s is one of the two constructible shapes.
func (s Shape) Validate() error {
	if s != MembershipPurchase && s != ProductsPurchase {
		return errs.NewValueIsInvalidErrorWithCause("shape", fmt.Errorf("%d is not a valid shape", s))
	}
	return nil
}

// String implements fmt.Stringer. Values outside the enum print as "Unknown".
func (s Shape) String() string {
	if str, ok := getShapeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
