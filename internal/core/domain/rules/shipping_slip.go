package rules

import (
	"context"
	"slices"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/ports"
	"funbooks/internal/pkg/errs"
)

// ShippingSlip requests one shipping slip per order covering every physical
// product in it.
type ShippingSlip struct {
	shippingService ports.ShippingService
}

// NewShippingSlip wires the rule to its shipping service.
// Returns errs.ValueIsRequiredError if shippingService is nil.
func NewShippingSlip(shippingService ports.ShippingService) (*ShippingSlip, error) {
	if shippingService == nil {
		return nil, errs.NewValueIsRequiredError("shippingService")
	}
	return &ShippingSlip{shippingService: shippingService}, nil
}

// Apply calls ShippingService.GenerateShippingSlip once with the physical
// products of the order, in order. Orders without physical products, including
// membership orders and orders with digital products only, produce no call.
func (r *ShippingSlip) Apply(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.HasPhysicalProducts() {
		return nil
	}

	return r.shippingService.GenerateShippingSlip(ctx, o.ID(), o.CustomerID(), slices.Collect(o.PhysicalProducts()))
}
