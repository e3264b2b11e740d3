package entity

import "time"

// Product representa un producto del almacén. El stock no vive aquí: se
// deriva de los lotes (Lot) recibidos por órdenes de compra.
type Product struct {
	ID               string
	Name             string
	Reference        string // código interno único
	ReorderThreshold int64  // umbral de reposición para alertas de stock
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
