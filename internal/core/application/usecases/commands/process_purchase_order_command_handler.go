package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"funbooks/internal/core/domain/model/order"
	"funbooks/internal/core/domain/model/product"
)

// ErrPurchaseOrderProcessing marks failures raised while the business rules ran,
// as opposed to an order that could not be built from the command.
var ErrPurchaseOrderProcessing = errors.New("purchase order processing failed")

// ProcessPurchaseOrderCommandHandler turns a ProcessPurchaseOrderCommand into a
// domain order and runs it through the purchase order processor.
//
// Example:
//
//	svc := services.NewPurchaseOrderService(activate, slip)
//	handler := NewProcessPurchaseOrderCommandHandler(svc, logger)
//	cmd, _ := NewProcessPurchaseOrderCommand("O1", "C1", true, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("purchase order failed: %w", err)
//	}
type ProcessPurchaseOrderCommandHandler struct {
	processor PurchaseOrderProcessor
	logger    *slog.Logger
}

// NewProcessPurchaseOrderCommandHandler creates a handler backed by processor.
func NewProcessPurchaseOrderCommandHandler(
	processor PurchaseOrderProcessor,
	logger *slog.Logger,
) ProcessPurchaseOrderCommandHandler {
	return ProcessPurchaseOrderCommandHandler{
		processor: processor,
		logger:    logger.With("component", "process_purchase_order_handler"),
	}
}

// Handle builds the order described by cmd and processes it.
// Domain validation errors are returned as is. Processing errors are wrapped with
// ErrPurchaseOrderProcessing and keep the collaborator's error reachable.
func (h *ProcessPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd ProcessPurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := buildOrder(cmd)
	if err != nil {
		return err
	}

	logger := h.logger.With(
		"order_id", o.ID(),
		"customer_id", o.CustomerID(),
		"shape", o.Shape().String(),
	)

	if err = h.processor.Process(ctx, o); err != nil {
		logger.ErrorContext(ctx, "Purchase order processing failed", "error", err)
		return fmt.Errorf("%w: order %s: %w", ErrPurchaseOrderProcessing, o.ID(), err)
	}

	logger.InfoContext(ctx, "Purchase order processed")
	return nil
}

func buildOrder(cmd ProcessPurchaseOrderCommand) (*order.Order, error) {
	if cmd.Membership() {
		return order.NewMembershipOrder(cmd.OrderID(), cmd.CustomerID())
	}

	items := cmd.Items()
	products := make([]product.Product, 0, len(items))
	for _, item := range items {
		p, err := newProduct(item)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return order.NewProductsOrder(cmd.OrderID(), cmd.CustomerID(), products)
}

func newProduct(item Item) (product.Product, error) {
	if item.Physical {
		return product.NewPhysicalBook(item.Title)
	}
	return product.NewDigitalBook(item.Title)
}
