package cmd_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"funbooks/cmd"
	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/domain/model/product"
	"funbooks/internal/core/domain/rules"
	"funbooks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopCustomerService struct{}

func (noopCustomerService) ActivateMembership(context.Context, string, order.Membership) error {
	return nil
}

type noopShippingService struct{}

func (noopShippingService) GenerateShippingSlip(context.Context, string, string, []product.Product) error {
	return nil
}

func collaborators() cmd.Collaborators {
	return cmd.Collaborators{
		CustomerService: noopCustomerService{},
		ShippingService: noopShippingService{},
	}
}

func writeRuleSet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRuleNames_DefaultOrder(t *testing.T) {
	names, err := cmd.LoadRuleNames("")
	require.NoError(t, err)
	assert.Equal(t, []string{"activate_membership", "shipping_slip"}, names)

	names[0] = "changed"
	assert.Equal(t, "activate_membership", cmd.DefaultRuleNames[0])
}

func TestLoadRuleNames_KeepsFileOrder(t *testing.T) {
	path := writeRuleSet(t, "rules:\n  - shipping_slip\n  - activate_membership\n")

	names, err := cmd.LoadRuleNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"shipping_slip", "activate_membership"}, names)
}

func TestLoadRuleNames_MissingFile(t *testing.T) {
	_, err := cmd.LoadRuleNames(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRuleNames_MalformedFile(t *testing.T) {
	path := writeRuleSet(t, "rules: [unterminated\n")

	_, err := cmd.LoadRuleNames(path)
	require.Error(t, err)
}

func TestBuildRules(t *testing.T) {
	built, err := cmd.BuildRules([]string{"shipping_slip", "activate_membership"}, collaborators())
	require.NoError(t, err)
	require.Len(t, built, 2)
	assert.IsType(t, &rules.ShippingSlip{}, built[0])
	assert.IsType(t, &rules.ActivateMembership{}, built[1])
}

func TestBuildRules_SingleRule(t *testing.T) {
	built, err := cmd.BuildRules([]string{"activate_membership"}, collaborators())
	require.NoError(t, err)
	require.Len(t, built, 1)
	assert.IsType(t, &rules.ActivateMembership{}, built[0])
}

func TestBuildRules_Empty(t *testing.T) {
	_, err := cmd.BuildRules(nil, collaborators())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBuildRules_Duplicate(t *testing.T) {
	_, err := cmd.BuildRules([]string{"shipping_slip", "shipping_slip"}, collaborators())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBuildRules_Unknown(t *testing.T) {
	_, err := cmd.BuildRules([]string{"activate_membership", "send_invoice"}, collaborators())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "send_invoice", notFound.ID)
}

func TestBuildRules_MissingCollaborator(t *testing.T) {
	_, err := cmd.BuildRules([]string{"activate_membership"}, cmd.Collaborators{})
	require.Error(t, err)
}
