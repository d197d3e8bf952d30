package ports

import (
	"context"

	"funbooks/internal/core/domain/model/product"
)

// ShippingService produces shipping paperwork.
type ShippingService interface {
	// GenerateShippingSlip creates a shipping slip for the order listing the given
	// products. Callers pass physical products only.
	// Errors are collaborator-defined and are returned to the caller unchanged.
	GenerateShippingSlip(ctx context.Context, orderID, customerID string, products []product.Product) error
}
