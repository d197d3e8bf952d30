package order

import (
	"errors"

	"funbooks/internal/pkg/guard"
)

// ErrMembershipIsNotConstructed is returned when a Membership was not created
// through NewMembership.
var ErrMembershipIsNotConstructed = errors.New("Membership must be created via NewMembership constructor")

// Membership marks an order as granting a membership. It carries no data; its
// presence on an Order is the whole signal.
type Membership struct {
	guard guard.ConstructorGuard
}

// NewMembership creates a membership marker.
func NewMembership() Membership {
	return Membership{guard: guard.NewConstructorGuard()}
}

// Validate ensures the Membership was created through NewMembership.
func (m Membership) Validate() error {
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}
