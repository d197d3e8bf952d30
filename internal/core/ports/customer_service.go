// Package ports defines the contracts between the purchase-order core and the
// external collaborators it drives. Implementations live outside the core and
// are supplied by the caller.
package ports

import (
	"context"

	"funbooks/internal/core/domain/model/order"
)

// CustomerService manages customer accounts.
type CustomerService interface {
	// ActivateMembership activates membership for the customer.
	// Errors are collaborator-defined and are returned to the caller unchanged.
	// Deadlines and cancellation carried by ctx are the implementation's to honour.
	ActivateMembership(ctx context.Context, customerID string, membership order.Membership) error
}
