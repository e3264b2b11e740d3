package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationSummary valorización global del stock sobre lotes disponibles.
type ValuationSummary struct {
	TotalValue           decimal.Decimal `json:"total_value"`            // Σ(restante × costo unitario)
	TotalQuantity        int64           `json:"total_quantity"`         // Σ(restante)
	ActiveLotCount       int             `json:"active_lot_count"`       // lotes AVAILABLE
	DistinctProductCount int             `json:"distinct_product_count"` // productos representados
	Method               string          `json:"method"`                 // siempre "FIFO"
}

// LotDetail detalle de un lote dentro de la valorización por producto.
type LotDetail struct {
	Number       string          `json:"number"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	InitialQty   int64           `json:"initial_qty"`
	RemainingQty int64           `json:"remaining_qty"`
	EntryDate    time.Time       `json:"entry_date"`
	Status       string          `json:"status"`
}

// ProductValuationDetail valorización FIFO de un producto. La lista incluye
// todos sus lotes (también los agotados, que aportan cero a los totales).
type ProductValuationDetail struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Reference      string          `json:"reference"`
	Lots           []LotDetail     `json:"lots"`
	FIFOValue      decimal.Decimal `json:"fifo_value"`
	TotalRemaining int64           `json:"total_remaining"`
	Method         string          `json:"method"`
}

// StockAlert producto cuyo stock restante está por debajo de su umbral de reposición.
type StockAlert struct {
	ProductID        string `json:"product_id"`
	Name             string `json:"name"`
	Reference        string `json:"reference"`
	Remaining        int64  `json:"remaining"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// MovementQuery parámetros de búsqueda del historial de movimientos.
type MovementQuery struct {
	ProductID string     `query:"product_id"`
	LotID     string     `query:"lot_id"`
	Type      string     `query:"type"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
	PageRequest
}

// MovementResponse un movimiento del historial.
type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Quantity      int64           `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Date          time.Time       `json:"date"`
	ProductID     string          `json:"product_id"`
	LotID         string          `json:"lot_id"`
	ExitVoucherID string          `json:"exit_voucher_id,omitempty"`
}
