package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	LotStatusAvailable = "AVAILABLE" // tiene unidades restantes
	LotStatusDepleted  = "DEPLETED"  // agotado; se conserva para historial y valorización
)

// Lot representa una partida fechada y valorada de un producto, creada al
// recibir una orden de compra. El costo unitario queda fijo al crearlo; la
// cantidad restante solo decrece (consumo FIFO) y nunca baja de cero.
type Lot struct {
	ID              string
	Number          string // formato LOT-<año>-<secuencia>
	ProductID       string
	EntryDate       time.Time
	InitialQty      int64
	RemainingQty    int64
	UnitCost        decimal.Decimal
	Status          string
	SupplierOrderID string // orden de compra que originó el lote (vacío si carga inicial)
	CreatedAt       time.Time
}

// Consume descuenta qty unidades del lote y lo marca DEPLETED al llegar a
// cero. Pánico implícito evitado: qty nunca debe exceder RemainingQty (el
// motor FIFO calcula take = min(pendiente, restante) antes de llamar).
func (l *Lot) Consume(qty int64) {
	l.RemainingQty -= qty
	if l.RemainingQty <= 0 {
		l.RemainingQty = 0
		l.Status = LotStatusDepleted
	}
}

// IsDepleted indica si el lote está agotado.
func (l *Lot) IsDepleted() bool { return l.RemainingQty == 0 }
