package rules

import (
	"context"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/ports"
	"funbooks/internal/pkg/errs"
)

// ActivateMembership activates a membership with the customer service when the
// order grants one.
type ActivateMembership struct {
	customerService ports.CustomerService
}

// NewActivateMembership wires the rule to its customer service.
// Returns errs.ValueIsRequiredError if customerService is nil.
func NewActivateMembership(customerService ports.CustomerService) (*ActivateMembership, error) {
	if customerService == nil {
		return nil, errs.NewValueIsRequiredError("customerService")
	}
	return &ActivateMembership{customerService: customerService}, nil
}

// Apply calls CustomerService.ActivateMembership once for a membership order and
// does nothing for any other order.
func (r *ActivateMembership) Apply(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	membership, ok := o.Membership()
	if !ok {
		return nil
	}

	return r.customerService.ActivateMembership(ctx, o.CustomerID(), membership)
}
