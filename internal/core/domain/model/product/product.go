package product

import (
	"errors"

	"funbooks/internal/pkg/errs"
	"funbooks/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created through
	// one of the category factories.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewPhysicalBook or NewDigitalBook")
)

// Product describes a purchasable item.
//
// Product follows these invariants:
//   - Title is never empty
//   - IsPhysical is fixed by the factory that created it
//   - Fields never change after construction
//
// Product is a value: copies are independent and equality is field-wise.
type Product struct {
	kind       Kind
	title      string
	isPhysical bool

	guard guard.ConstructorGuard
}

// NewPhysicalBook creates a book that has to be shipped to the customer.
//
// Returns errs.ValueIsRequiredError if title is empty.
//
// Example:
//
//	dune, err := product.NewPhysicalBook("Dune")
//	if err != nil {
//	    return err
//	}
//	dune.IsPhysical() // true
func NewPhysicalBook(title string) (Product, error) {
	return newProduct(Book, title, true)
}

// NewDigitalBook creates a book that is delivered electronically and never
// appears on a shipping slip.
//
// Returns errs.ValueIsRequiredError if title is empty.
func NewDigitalBook(title string) (Product, error) {
	return newProduct(Book, title, false)
}

func newProduct(kind Kind, title string, isPhysical bool) (Product, error) {
	p := Product{
		isPhysical: isPhysical,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setKind(kind),
		p.setTitle(title),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the Product was created through a factory.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Title returns the product title.
func (p Product) Title() string {
	return p.title
}

// IsPhysical reports whether the product has to be shipped.
func (p Product) IsPhysical() bool {
	return p.isPhysical
}

// Kind returns the product category.
func (p Product) Kind() Kind {
	return p.kind
}

func (p *Product) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}
