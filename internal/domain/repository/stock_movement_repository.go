package repository

import (
	"time"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
)

// MovementFilter criterios opcionales para consultar el historial de
// movimientos. Campos en cero se ignoran (consulta dinámica).
type MovementFilter struct {
	ProductID string
	LotID     string
	Type      string // IN | OUT
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (append-only: solo Create y lecturas).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByCriteria historial filtrado, fecha de movimiento desc.
	ListByCriteria(filter MovementFilter) ([]*entity.StockMovement, error)
	// SumOutByLot suma de salidas (OUT) registradas sobre un lote.
	SumOutByLot(lotID string) (int64, error)
}
