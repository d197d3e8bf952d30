package cmd_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funbooks/cmd"
	"funbooks/internal/core/application/usecases/commands"
	"funbooks/internal/core/domain/rules"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewCompositionRoot_DefaultRules(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)

	configured := root.PurchaseOrderService().Rules()
	require.Len(t, configured, 2)
	assert.IsType(t, &rules.ActivateMembership{}, configured[0])
	assert.IsType(t, &rules.ShippingSlip{}, configured[1])
}

func TestNewCompositionRoot_RulesFile(t *testing.T) {
	path := writeRuleSet(t, "rules:\n  - shipping_slip\n")

	root, err := cmd.NewCompositionRoot(cmd.Config{RulesFile: path}, discardLogger())
	require.NoError(t, err)

	configured := root.PurchaseOrderService().Rules()
	require.Len(t, configured, 1)
	assert.IsType(t, &rules.ShippingSlip{}, configured[0])
}

func TestNewCompositionRoot_InvalidRulesFile(t *testing.T) {
	path := writeRuleSet(t, "rules:\n  - unknown_rule\n")

	_, err := cmd.NewCompositionRoot(cmd.Config{RulesFile: path}, discardLogger())
	require.Error(t, err)
}

func TestCompositionRoot_ProcessPurchaseOrder(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)

	cmdOrder, err := commands.NewProcessPurchaseOrderCommand("O1", "C1", false, []commands.Item{
		{Title: "Dune", Physical: true},
	})
	require.NoError(t, err)

	handler := root.CreateProcessPurchaseOrderCommandHandler()
	require.NoError(t, handler.Handle(t.Context(), cmdOrder))
}

func TestCompositionRoot_HTTPRouter(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)

	e, err := root.CreateHTTPRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"orderId":"O1","customerId":"C1","membership":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
