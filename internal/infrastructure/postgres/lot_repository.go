package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, number, product_id, entry_date, initial_qty, remaining_qty, unit_cost, status, supplier_order_id, created_at`

// Create persiste un lote.
func (r *LotRepo) Create(lot *entity.Lot) error {
	if lot.ID == "" {
		lot.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lots (id, number, product_id, entry_date, initial_qty, remaining_qty, unit_cost, status, supplier_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Number, lot.ProductID, lot.EntryDate,
		lot.InitialQty, lot.RemainingQty, lot.UnitCost, lot.Status,
		nullIfEmpty(lot.SupplierOrderID), lot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lot number already exists: %w", err)
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// CreateBatch persiste varios lotes (recepción de una orden de compra).
func (r *LotRepo) CreateBatch(lots []*entity.Lot) error {
	for _, lot := range lots {
		if err := r.Create(lot); err != nil {
			return err
		}
	}
	return nil
}

// Update actualiza cantidad restante y estado (el resto del lote es inmutable).
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `UPDATE lots SET remaining_qty = $1, status = $2 WHERE id = $3`
	_, err := r.q.Exec(context.Background(), query, lot.RemainingQty, lot.Status, lot.ID)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// FindAvailableByProductForUpdate lotes AVAILABLE de un producto en orden de
// entrada (desempate por id) con bloqueo de fila. Dos validaciones
// concurrentes sobre el mismo producto quedan serializadas hasta el commit.
func (r *LotRepo) FindAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE product_id = $1 AND status = $2
		ORDER BY entry_date ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID, entity.LotStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("find available lots for update: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// FindByProduct todos los lotes del producto (cualquier estado), orden de entrada.
func (r *LotRepo) FindByProduct(productID string) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE product_id = $1
		ORDER BY entry_date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("find lots by product: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// FindAvailable todos los lotes AVAILABLE del sistema, orden de entrada.
func (r *LotRepo) FindAvailable() ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE status = $1
		ORDER BY entry_date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, entity.LotStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("find available lots: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// NextSequence siguiente valor de la secuencia de numeración de lotes.
func (r *LotRepo) NextSequence() (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('lot_number_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next lot sequence: %w", err)
	}
	return seq, nil
}

// ProductStockLevels stock restante por producto sobre lotes disponibles.
// LEFT JOIN para incluir productos sin lotes (restante 0).
func (r *LotRepo) ProductStockLevels() ([]repository.ProductStockLevel, error) {
	query := `
		SELECT p.id, p.name, p.reference, p.reorder_threshold,
		       COALESCE(SUM(l.remaining_qty) FILTER (WHERE l.status = $1), 0)
		FROM products p
		LEFT JOIN lots l ON l.product_id = p.id
		GROUP BY p.id, p.name, p.reference, p.reorder_threshold
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, entity.LotStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("product stock levels: %w", err)
	}
	defer rows.Close()
	var levels []repository.ProductStockLevel
	for rows.Next() {
		var lvl repository.ProductStockLevel
		if err := rows.Scan(&lvl.ProductID, &lvl.Name, &lvl.Reference, &lvl.ReorderThreshold, &lvl.Remaining); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		levels = append(levels, lvl)
	}
	return levels, rows.Err()
}

func scanLots(rows pgx.Rows) ([]*entity.Lot, error) {
	var lots []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		var supplierOrderID *string
		if err := rows.Scan(&l.ID, &l.Number, &l.ProductID, &l.EntryDate,
			&l.InitialQty, &l.RemainingQty, &l.UnitCost, &l.Status,
			&supplierOrderID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		if supplierOrderID != nil {
			l.SupplierOrderID = *supplierOrderID
		}
		lots = append(lots, &l)
	}
	return lots, rows.Err()
}
