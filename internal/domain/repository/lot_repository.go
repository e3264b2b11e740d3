package repository

import "github.com/jhoicas/stock-lotes-api/internal/domain/entity"

// ProductStockLevel nivel de stock agregado de un producto sobre sus lotes
// disponibles (modelo de lectura para alertas de reposición).
type ProductStockLevel struct {
	ProductID        string
	Name             string
	Reference        string
	ReorderThreshold int64
	Remaining        int64
}

// LotRepository define el puerto de persistencia para lotes (DIP).
// Los métodos *ForUpdate solo tienen sentido dentro de una transacción:
// bloquean las filas leídas (SELECT FOR UPDATE) hasta el commit, lo que
// serializa por producto el ciclo leer-decidir-mutar del consumo FIFO.
type LotRepository interface {
	Create(lot *entity.Lot) error
	CreateBatch(lots []*entity.Lot) error
	Update(lot *entity.Lot) error
	// FindAvailableByProductForUpdate lotes AVAILABLE de un producto,
	// fecha de entrada asc (desempate por id asc), con bloqueo de fila.
	FindAvailableByProductForUpdate(productID string) ([]*entity.Lot, error)
	// FindByProduct todos los lotes del producto (cualquier estado),
	// fecha de entrada asc.
	FindByProduct(productID string) ([]*entity.Lot, error)
	// FindAvailable todos los lotes AVAILABLE del sistema.
	FindAvailable() ([]*entity.Lot, error)
	// NextSequence devuelve el siguiente número de la secuencia de lotes
	// (monótona y única a nivel sistema).
	NextSequence() (int64, error)
	// ProductStockLevels stock restante por producto sobre lotes disponibles,
	// incluyendo productos sin lotes (restante 0).
	ProductStockLevels() ([]ProductStockLevel, error)
}
