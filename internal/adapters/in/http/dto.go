package http

import "funbooks/internal/core/application/usecases/commands"

// PurchaseOrderRequest is the body of POST /api/v1/orders.
type PurchaseOrderRequest struct {
	OrderID    string           `json:"orderId"`
	CustomerID string           `json:"customerId"`
	Membership bool             `json:"membership"`
	Products   []ProductRequest `json:"products"`
}

type ProductRequest struct {
	Title    string `json:"title"`
	Physical bool   `json:"physical"`
}

// Error is the body of every non-2xx response produced by the adapter.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r PurchaseOrderRequest) items() []commands.Item {
	if len(r.Products) == 0 {
		return nil
	}

	items := make([]commands.Item, len(r.Products))
	for i, p := range r.Products {
		items[i] = commands.Item{Title: p.Title, Physical: p.Physical}
	}
	return items
}
