package entity

import "time"

// Supplier representa un proveedor de órdenes de compra.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
