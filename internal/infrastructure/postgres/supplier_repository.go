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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	query := `
		INSERT INTO suppliers (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.Email), nullIfEmpty(supplier.Phone), supplier.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID, o nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, email, phone, created_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	var email, phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &email, &phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if email != nil {
		s.Email = *email
	}
	if phone != nil {
		s.Phone = *phone
	}
	return &s, nil
}

// List devuelve proveedores paginados por nombre.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, email, phone, created_at FROM suppliers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var email, phone *string
		if err := rows.Scan(&s.ID, &s.Name, &email, &phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if email != nil {
			s.Email = *email
		}
		if phone != nil {
			s.Phone = *phone
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

var _ repository.WorkshopRepository = (*WorkshopRepo)(nil)

// WorkshopRepo implementación de WorkshopRepository (usable con pool o tx).
type WorkshopRepo struct {
	q Querier
}

// NewWorkshopRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkshopRepository(q Querier) *WorkshopRepo {
	return &WorkshopRepo{q: q}
}

// Create persiste un taller.
func (r *WorkshopRepo) Create(workshop *entity.Workshop) error {
	if workshop.ID == "" {
		workshop.ID = uuid.New().String()
	}
	query := `INSERT INTO workshops (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, workshop.ID, workshop.Name, workshop.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert workshop: %w", err)
	}
	return nil
}

// GetByID obtiene un taller por ID, o nil si no existe.
func (r *WorkshopRepo) GetByID(id string) (*entity.Workshop, error) {
	query := `SELECT id, name, created_at FROM workshops WHERE id = $1`
	var w entity.Workshop
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Name, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workshop: %w", err)
	}
	return &w, nil
}

// List devuelve talleres paginados por nombre.
func (r *WorkshopRepo) List(limit, offset int) ([]*entity.Workshop, error) {
	query := `SELECT id, name, created_at FROM workshops ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Workshop
	for rows.Next() {
		var w entity.Workshop
		if err := rows.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workshop: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
