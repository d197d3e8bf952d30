// Package stub provides collaborator implementations that only log what they
// were asked to do. They stand in for the real customer and shipping systems.
package stub

import (
	"context"
	"log/slog"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/ports"
)

var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService records membership activations in the log.
type CustomerService struct {
	logger *slog.Logger
}

func NewCustomerService(logger *slog.Logger) *CustomerService {
	return &CustomerService{logger: logger.With("component", "stub_customer_service")}
}

func (s *CustomerService) ActivateMembership(ctx context.Context, customerID string, membership order.Membership) error {
	if err := membership.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Membership activated", "customer_id", customerID)
	return nil
}
