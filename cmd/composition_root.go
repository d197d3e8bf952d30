package cmd

import (
	"log/slog"

	httpadapter "funbooks/internal/adapters/in/http"
	"funbooks/internal/adapters/out/stub"
	"funbooks/internal/core/application/usecases/commands"
	"funbooks/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CompositionRoot wires the collaborators, the configured rules and the
// purchase order service. The rule list is assembled once.
type CompositionRoot struct {
	logger               *slog.Logger
	purchaseOrderService *services.PurchaseOrderService
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (CompositionRoot, error) {
	names, err := LoadRuleNames(cfg.RulesFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	businessRules, err := BuildRules(names, Collaborators{
		CustomerService: stub.NewCustomerService(logger),
		ShippingService: stub.NewShippingService(logger),
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	logger.Info("Purchase order rules configured", "rules", names)

	return CompositionRoot{
		logger:               logger,
		purchaseOrderService: services.NewPurchaseOrderService(businessRules...),
	}, nil
}

func (c *CompositionRoot) PurchaseOrderService() *services.PurchaseOrderService {
	return c.purchaseOrderService
}

func (c *CompositionRoot) CreateProcessPurchaseOrderCommandHandler() commands.ProcessPurchaseOrderCommandHandler {
	return commands.NewProcessPurchaseOrderCommandHandler(c.purchaseOrderService, c.logger)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	handler := c.CreateProcessPurchaseOrderCommandHandler()
	return httpadapter.NewRouter(httpadapter.NewServer(&handler), c.logger)
}
