package rules

import (
	"context"

	"funbooks/internal/core/domain/model/order"
)

// BusinessRule applies one conditional side effect to an order.
type BusinessRule interface {
	Apply(ctx context.Context, o *order.Order) error
}

// RuleFunc adapts an ordinary function to BusinessRule.
type RuleFunc func(ctx context.Context, o *order.Order) error

// Apply calls f(ctx, o).
func (f RuleFunc) Apply(ctx context.Context, o *order.Order) error {
	return f(ctx, o)
}
