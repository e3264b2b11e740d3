package inventory

import (
	"context"

	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: si fn devuelve error,
// nada de lo escrito dentro sobrevive (rollback); si no, se hace commit.
type TxRunner interface {
	// Run transacción para validar vales de salida.
	Run(ctx context.Context, fn func(
		lots repository.LotRepository,
		movements repository.StockMovementRepository,
		vouchers repository.ExitVoucherRepository,
		products repository.ProductRepository,
	) error) error

	// RunReception transacción para recibir órdenes de compra.
	RunReception(ctx context.Context, fn func(
		lots repository.LotRepository,
		movements repository.StockMovementRepository,
		orders repository.SupplierOrderRepository,
		products repository.ProductRepository,
	) error) error
}
