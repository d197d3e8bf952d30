// Package rules provides the business rules applied to a purchase order.
//
// Each rule inspects an order and, when its precondition holds, performs exactly
// one side effect through an injected collaborator:
//   - ActivateMembership: activates the customer's membership for membership orders
//   - ShippingSlip: requests a shipping slip listing the physical products
//
// Rules are independent of one another. They do not catch, translate, retry or
// log collaborator failures; the collaborator's error is returned as is.
package rules
