package services

import (
	"context"
	"slices"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/domain/rules"
)

// PurchaseOrderService applies a fixed sequence of business rules to purchase
// orders.
//
// The rule sequence is captured at construction and never changes afterwards,
// so one service may be shared by concurrent Process calls as long as each call
// gets its own order. Callers that need a different rule set per context build
// another service.
//
// Example usage:
//
//	activate, _ := rules.NewActivateMembership(customerService)
//	slip, _ := rules.NewShippingSlip(shippingService)
//	svc := services.NewPurchaseOrderService(activate, slip)
//
//	o, _ := order.NewMembershipOrder("O1", "C1")
//	if err := svc.Process(ctx, o); err != nil {
//	    // a collaborator failed; rules after the failing one did not run
//	}
type PurchaseOrderService struct {
	rules []rules.BusinessRule
}

// NewPurchaseOrderService creates a service applying businessRules in the given
// order. The slice is copied.
func NewPurchaseOrderService(businessRules ...rules.BusinessRule) *PurchaseOrderService {
	return &PurchaseOrderService{
		rules: slices.Clone(businessRules),
	}
}

// Rules returns a copy of the rule sequence.
func (s *PurchaseOrderService) Rules() []rules.BusinessRule {
	return slices.Clone(s.rules)
}

// Process applies every rule to o, in sequence order, on the calling goroutine.
//
// A rule's outcome does not decide whether the next one runs, except for
// failure: the first error is returned unchanged and the remaining rules are
// skipped. Nothing already done by earlier rules is undone.
func (s *PurchaseOrderService) Process(ctx context.Context, o *order.Order) error {
	for _, rule := range s.rules {
		if err := rule.Apply(ctx, o); err != nil {
			return err
		}
	}
	return nil
}
