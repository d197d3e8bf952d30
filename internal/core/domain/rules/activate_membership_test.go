package rules_test

import (
	"errors"
	"testing"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/domain/model/product"
	"funbooks/internal/core/domain/rules"
	"funbooks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewActivateMembership(t *testing.T) {
	t.Run("should reject nil customer service", func(t *testing.T) {
		rule, err := rules.NewActivateMembership(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, rule)
	})
}

func TestActivateMembership_Apply(t *testing.T) {
	t.Run("should activate membership for membership order", func(t *testing.T) {
		ctx := t.Context()
		o, err := order.NewMembershipOrder("O1", "C1")
		require.NoError(t, err)
		membership, _ := o.Membership()

		customerService := new(MockCustomerService)
		customerService.On("ActivateMembership", ctx, "C1", membership).Return(nil).Once()

		rule, err := rules.NewActivateMembership(customerService)
		require.NoError(t, err)

		require.NoError(t, rule.Apply(ctx, o))
		customerService.AssertExpectations(t)
		customerService.AssertNumberOfCalls(t, "ActivateMembership", 1)
	})

	t.Run("should not call customer service for products order", func(t *testing.T) {
		ctx := t.Context()
		dune, _ := product.NewPhysicalBook("Dune")
		o, err := order.NewProductsOrder("O1", "C1", []product.Product{dune})
		require.NoError(t, err)

		customerService := new(MockCustomerService)
		rule, _ := rules.NewActivateMembership(customerService)

		require.NoError(t, rule.Apply(ctx, o))
		customerService.AssertNotCalled(t, "ActivateMembership", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return collaborator error unchanged", func(t *testing.T) {
		ctx := t.Context()
		o, _ := order.NewMembershipOrder("O1", "C1")
		activationErr := errors.New("customer service unavailable")

		customerService := new(MockCustomerService)
		customerService.On("ActivateMembership", ctx, "C1", mock.AnythingOfType("order.Membership")).
			Return(activationErr).Once()
		rule, _ := rules.NewActivateMembership(customerService)

		err := rule.Apply(ctx, o)

		assert.Same(t, activationErr, err)
		customerService.AssertExpectations(t)
	})

	t.Run("should reject order that was not constructed", func(t *testing.T) {
		customerService := new(MockCustomerService)
		rule, _ := rules.NewActivateMembership(customerService)

		err := rule.Apply(t.Context(), nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		customerService.AssertNotCalled(t, "ActivateMembership", mock.Anything, mock.Anything, mock.Anything)
	})
}
