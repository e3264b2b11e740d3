package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra a proveedor. La recepción
// (VALIDATED → DELIVERED) es la única transición que crea lotes.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusValidated = "VALIDATED"
	OrderStatusDelivered = "DELIVERED"
)

// SupplierOrder es una orden de compra: líneas de (producto, cantidad,
// costo unitario) que al recibirse se convierten en lotes.
type SupplierOrder struct {
	ID         string
	Number     string
	SupplierID string
	Date       time.Time
	Status     string
	Lines      []SupplierOrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SupplierOrderLine una línea de la orden de compra.
type SupplierOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
}
