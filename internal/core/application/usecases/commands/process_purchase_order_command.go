package commands

import (
	"errors"
	"slices"

	"funbooks/internal/pkg/guard"
)

var (
	ErrProcessPurchaseOrderCommandIsNotConstructed = errors.New(
		"ProcessPurchaseOrderCommand must be created via NewProcessPurchaseOrderCommand constructor",
	)
	ErrOrderIDIsRequired    = errors.New("order id is required")
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrMembershipWithItems  = errors.New("membership order must not contain products")
)

// Item is one product line of a purchase-order request.
type Item struct {
	Title    string
	Physical bool
}

// ProcessPurchaseOrderCommand represents a request to run a purchase order
// through the business rules. It describes either a membership purchase or a
// purchase of products, never both.
//
// Example:
//
//	cmd, err := NewProcessPurchaseOrderCommand("O1", "C1", false, []Item{
//	    {Title: "Dune", Physical: true},
//	    {Title: "Neuromancer"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid purchase order: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to process purchase order: %w", err)
//	}
type ProcessPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	membership bool
	items      []Item

	guard guard.ConstructorGuard
}

// NewProcessPurchaseOrderCommand creates a command for one purchase order.
// Validates that both identifiers are present and that a membership purchase
// carries no items. A products purchase may carry no items at all.
func NewProcessPurchaseOrderCommand(
	orderID, customerID string,
	membership bool,
	items []Item,
) (ProcessPurchaseOrderCommand, error) {
	cmd := ProcessPurchaseOrderCommand{
		membership: membership,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return ProcessPurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessPurchaseOrderCommandIsNotConstructed if validation fails.
func (c ProcessPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessPurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c ProcessPurchaseOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the customer identifier.
func (c ProcessPurchaseOrderCommand) CustomerID() string {
	return c.customerID
}

// Membership reports whether the order is a membership purchase.
func (c ProcessPurchaseOrderCommand) Membership() bool {
	return c.membership
}

// Items returns a copy of the product lines.
func (c ProcessPurchaseOrderCommand) Items() []Item {
	return slices.Clone(c.items)
}

func (c *ProcessPurchaseOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPurchaseOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *ProcessPurchaseOrderCommand) setItems(items []Item) error {
	if c.membership && len(items) > 0 {
		return ErrMembershipWithItems
	}

	c.items = slices.Clone(items)
	return nil
}
