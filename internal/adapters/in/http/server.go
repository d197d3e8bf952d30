// Package http is the inbound HTTP adapter. It translates requests into
// commands and maps their outcome onto status codes.
package http

import (
	"context"
	"errors"
	"net/http"

	"funbooks/internal/core/application/usecases/commands"
	"funbooks/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PurchaseOrderHandler executes ProcessPurchaseOrder commands.
type PurchaseOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessPurchaseOrderCommand) error
}

// Server holds the command handlers behind the HTTP routes.
type Server struct {
	processPurchaseOrderHandler PurchaseOrderHandler
}

// NewServer creates a new HTTP server backed by the given command handler.
func NewServer(processPurchaseOrderHandler PurchaseOrderHandler) *Server {
	return &Server{
		processPurchaseOrderHandler: processPurchaseOrderHandler,
	}
}

// ProcessPurchaseOrder handles POST /api/v1/orders - runs a purchase order
// through the business rules.
func (s *Server) ProcessPurchaseOrder(ctx echo.Context) error {
	var body PurchaseOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewProcessPurchaseOrderCommand(
		body.OrderID,
		body.CustomerID,
		body.Membership,
		body.items(),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase order: " + err.Error(),
		})
	}

	err = s.processPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusAccepted)
	case errors.Is(err, commands.ErrPurchaseOrderProcessing):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to process purchase order",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase order: " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process purchase order",
		})
	}
}
