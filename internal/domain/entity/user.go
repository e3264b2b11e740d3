package entity

import "time"

// User usuario de la API (autenticación JWT).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string // "admin" | "bodeguero"
	CreatedAt    time.Time
}
