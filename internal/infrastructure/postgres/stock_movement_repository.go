package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, type, quantity, unit_cost, date, product_id, lot_id, exit_voucher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity, movement.UnitCost,
		movement.Date, movement.ProductID, movement.LotID,
		nullIfEmpty(movement.ExitVoucherID), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByCriteria historial filtrado por producto, lote, tipo y rango de
// fechas, en orden de fecha descendente. Los filtros en cero se omiten.
func (r *StockMovementRepo) ListByCriteria(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, unit_cost, date, product_id, lot_id, exit_voucher_id, created_at
		FROM stock_movements WHERE 1=1`
	var args []any
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.LotID != "" {
		query += fmt.Sprintf(" AND lot_id = $%d", pos)
		args = append(args, f.LotID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var exitVoucherID *string
		if err := rows.Scan(&m.ID, &m.Type, &m.Quantity, &m.UnitCost, &m.Date,
			&m.ProductID, &m.LotID, &exitVoucherID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if exitVoucherID != nil {
			m.ExitVoucherID = *exitVoucherID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumOutByLot suma de salidas registradas sobre un lote.
func (r *StockMovementRepo) SumOutByLot(lotID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements WHERE lot_id = $1 AND type = $2`
	var sum int64
	err := r.q.QueryRow(context.Background(), query, lotID, entity.MovementTypeOUT).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum out by lot: %w", err)
	}
	return sum, nil
}
