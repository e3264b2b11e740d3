package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada por recepción de orden de compra
	MovementTypeOUT = "OUT" // salida por validación de vale de salida
)

// StockMovement es un registro inmutable del libro de movimientos: una
// entrada o salida de unidades de un lote concreto. Se crea una vez por lote
// tocado y nunca se modifica ni se borra.
type StockMovement struct {
	ID            string
	Type          string
	Quantity      int64           // siempre positiva; el signo lo da Type
	UnitCost      decimal.Decimal // copiado del lote al momento del movimiento
	Date          time.Time
	ProductID     string
	LotID         string
	ExitVoucherID string // vale de salida asociado (vacío en entradas)
	CreatedAt     time.Time
}
