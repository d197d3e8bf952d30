package stub

import (
	"context"
	"log/slog"

	"funbooks/internal/core/domain/model/product"
	"funbooks/internal/core/ports"
)

var _ ports.ShippingService = (*ShippingService)(nil)

// ShippingService records generated shipping slips in the log.
type ShippingService struct {
	logger *slog.Logger
}

func NewShippingService(logger *slog.Logger) *ShippingService {
	return &ShippingService{logger: logger.With("component", "stub_shipping_service")}
}

func (s *ShippingService) GenerateShippingSlip(
	ctx context.Context,
	orderID, customerID string,
	products []product.Product,
) error {
	titles := make([]string, len(products))
	for i, p := range products {
		titles[i] = p.Title()
	}

	s.logger.InfoContext(ctx, "Shipping slip generated",
		"order_id", orderID,
		"customer_id", customerID,
		"titles", titles,
	)
	return nil
}
