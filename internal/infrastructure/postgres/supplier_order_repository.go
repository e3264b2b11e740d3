package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

// SupplierOrderRepo implementación de SupplierOrderRepository (usable con pool o tx).
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

// Create persiste la cabecera de la orden y sus líneas.
func (r *SupplierOrderRepo) Create(order *entity.SupplierOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO supplier_orders (id, number, supplier_id, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.SupplierID, order.Date,
		order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order number already exists: %w", err)
		}
		return fmt.Errorf("insert supplier order: %w", err)
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		lineQuery := `
			INSERT INTO supplier_order_lines (id, order_id, product_id, quantity, unit_cost)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, order.ID, line.ProductID, line.Quantity, line.UnitCost); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la orden con sus líneas, o nil si no existe.
func (r *SupplierOrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	query := `
		SELECT id, number, supplier_id, date, status, created_at, updated_at
		FROM supplier_orders WHERE id = $1`
	var o entity.SupplierOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Number, &o.SupplierID, &o.Date, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier order: %w", err)
	}
	if err := r.loadLines(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update actualiza estado y fecha de modificación.
func (r *SupplierOrderRepo) Update(order *entity.SupplierOrder) error {
	query := `UPDATE supplier_orders SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.q.Exec(context.Background(), query, order.Status, order.UpdatedAt, order.ID)
	if err != nil {
		return fmt.Errorf("update supplier order: %w", err)
	}
	return nil
}

// List devuelve órdenes paginadas, más recientes primero, con sus líneas.
func (r *SupplierOrderRepo) List(limit, offset int) ([]*entity.SupplierOrder, error) {
	query := `
		SELECT id, number, supplier_id, date, status, created_at, updated_at
		FROM supplier_orders
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierOrder
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.Number, &o.SupplierID, &o.Date,
			&o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadLines(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *SupplierOrderRepo) loadLines(o *entity.SupplierOrder) error {
	query := `
		SELECT id, order_id, product_id, quantity, unit_cost
		FROM supplier_order_lines WHERE order_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.SupplierOrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.UnitCost); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, line)
	}
	return rows.Err()
}
