package repository

import "github.com/jhoicas/stock-lotes-api/internal/domain/entity"

// ExitVoucherRepository define el puerto de persistencia para vales de salida.
type ExitVoucherRepository interface {
	Create(voucher *entity.ExitVoucher) error
	// GetByID devuelve el vale con sus líneas en orden, o nil si no existe.
	GetByID(id string) (*entity.ExitVoucher, error)
	Update(voucher *entity.ExitVoucher) error
	List(limit, offset int) ([]*entity.ExitVoucher, error)
	// NextSequence secuencia para numerar vales (BS-<secuencia>).
	NextSequence() (int64, error)
}
