package rules_test

import (
	"context"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct{ mock.Mock }

func (m *MockCustomerService) ActivateMembership(ctx context.Context, customerID string, membership order.Membership) error {
	args := m.Called(ctx, customerID, membership)
	return args.Error(0)
}

type MockShippingService struct{ mock.Mock }

func (m *MockShippingService) GenerateShippingSlip(
	ctx context.Context, orderID, customerID string, products []product.Product,
) error {
	args := m.Called(ctx, orderID, customerID, products)
	return args.Error(0)
}
