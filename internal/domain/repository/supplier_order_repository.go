package repository

import "github.com/jhoicas/stock-lotes-api/internal/domain/entity"

// SupplierOrderRepository define el puerto de persistencia para órdenes de compra.
type SupplierOrderRepository interface {
	Create(order *entity.SupplierOrder) error
	// GetByID devuelve la orden con sus líneas, o nil si no existe.
	GetByID(id string) (*entity.SupplierOrder, error)
	Update(order *entity.SupplierOrder) error
	List(limit, offset int) ([]*entity.SupplierOrder, error)
}
