package product

import (
	"fmt"

	"funbooks/internal/pkg/errs"
)

// Kind is the category of a product.
type Kind string

const (
	// Book covers both physical and digital books.
	Book Kind = "Book"
)

// Validate reports whether k is a known product category.
func (k Kind) Validate() error {
	switch k {
	case Book:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known product kind", string(k)))
	}
}

// String returns the category name.
func (k Kind) String() string {
	return string(k)
}
