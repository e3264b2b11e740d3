package entity

import "time"

// Workshop es el taller destino de un vale de salida.
type Workshop struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
