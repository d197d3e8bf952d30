// Package commands contains business operations that act on purchase orders.
// Implements the Command pattern: each command is validated on construction and
// executed by its handler.
package commands

import (
	"context"

	"funbooks/internal/core/domain/model/order"
)

// PurchaseOrderProcessor applies the configured business rules to an order.
// Implemented by services.PurchaseOrderService.
type PurchaseOrderProcessor interface {
	Process(ctx context.Context, o *order.Order) error
}
