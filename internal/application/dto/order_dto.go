package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden de compra a crear.
type OrderLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	SupplierID string             `json:"supplier_id"`
	Lines      []OrderLineRequest `json:"lines"`
}

// OrderLineResponse línea de la orden en respuestas.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// OrderResponse representación de una orden de compra.
type OrderResponse struct {
	ID         string              `json:"id"`
	Number     string              `json:"number"`
	SupplierID string              `json:"supplier_id"`
	Date       time.Time           `json:"date"`
	Status     string              `json:"status"`
	Lines      []OrderLineResponse `json:"lines"`
}
