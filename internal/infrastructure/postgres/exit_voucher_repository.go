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

var _ repository.ExitVoucherRepository = (*ExitVoucherRepo)(nil)

// ExitVoucherRepo implementación de ExitVoucherRepository (usable con pool o tx).
type ExitVoucherRepo struct {
	q Querier
}

// NewExitVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExitVoucherRepository(q Querier) *ExitVoucherRepo {
	return &ExitVoucherRepo{q: q}
}

// Create persiste la cabecera del vale y sus líneas.
func (r *ExitVoucherRepo) Create(voucher *entity.ExitVoucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	query := `
		INSERT INTO exit_vouchers (id, number, date, reason, workshop_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		voucher.ID, voucher.Number, voucher.Date, voucher.Reason,
		nullIfEmpty(voucher.WorkshopID), voucher.Status, voucher.CreatedAt, voucher.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("voucher number already exists: %w", err)
		}
		return fmt.Errorf("insert exit voucher: %w", err)
	}
	for i := range voucher.Lines {
		line := &voucher.Lines[i]
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		lineQuery := `
			INSERT INTO exit_voucher_lines (id, voucher_id, product_id, quantity)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, voucher.ID, line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("insert voucher line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve el vale con sus líneas, o nil si no existe.
func (r *ExitVoucherRepo) GetByID(id string) (*entity.ExitVoucher, error) {
	query := `
		SELECT id, number, date, reason, workshop_id, status, created_at, updated_at
		FROM exit_vouchers WHERE id = $1`
	var v entity.ExitVoucher
	var workshopID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Number, &v.Date, &v.Reason, &workshopID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit voucher: %w", err)
	}
	if workshopID != nil {
		v.WorkshopID = *workshopID
	}
	if err := r.loadLines(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update actualiza estado y fecha de modificación (el resto es inmutable).
func (r *ExitVoucherRepo) Update(voucher *entity.ExitVoucher) error {
	query := `UPDATE exit_vouchers SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.q.Exec(context.Background(), query, voucher.Status, voucher.UpdatedAt, voucher.ID)
	if err != nil {
		return fmt.Errorf("update exit voucher: %w", err)
	}
	return nil
}

// List devuelve vales paginados, más recientes primero, con sus líneas.
func (r *ExitVoucherRepo) List(limit, offset int) ([]*entity.ExitVoucher, error) {
	query := `
		SELECT id, number, date, reason, workshop_id, status, created_at, updated_at
		FROM exit_vouchers
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list exit vouchers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExitVoucher
	for rows.Next() {
		var v entity.ExitVoucher
		var workshopID *string
		if err := rows.Scan(&v.ID, &v.Number, &v.Date, &v.Reason, &workshopID,
			&v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exit voucher: %w", err)
		}
		if workshopID != nil {
			v.WorkshopID = *workshopID
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		if err := r.loadLines(v); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// NextSequence siguiente valor de la secuencia de numeración de vales.
func (r *ExitVoucherRepo) NextSequence() (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('exit_voucher_number_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next voucher sequence: %w", err)
	}
	return seq, nil
}

func (r *ExitVoucherRepo) loadLines(v *entity.ExitVoucher) error {
	query := `
		SELECT id, voucher_id, product_id, quantity
		FROM exit_voucher_lines WHERE voucher_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, v.ID)
	if err != nil {
		return fmt.Errorf("load voucher lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.ExitVoucherLine
		if err := rows.Scan(&line.ID, &line.VoucherID, &line.ProductID, &line.Quantity); err != nil {
			return fmt.Errorf("scan voucher line: %w", err)
		}
		v.Lines = append(v.Lines, line)
	}
	return rows.Err()
}
