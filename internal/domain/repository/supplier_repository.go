package repository

import "github.com/jhoicas/stock-lotes-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}

// WorkshopRepository define el puerto de persistencia para talleres.
type WorkshopRepository interface {
	Create(workshop *entity.Workshop) error
	GetByID(id string) (*entity.Workshop, error)
	List(limit, offset int) ([]*entity.Workshop, error)
}
