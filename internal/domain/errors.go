package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidState       = errors.New("estado inválido para la operación")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNoLotsAvailable    = errors.New("sin lotes disponibles")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// InsufficientStockError indica que los lotes disponibles de un producto no
// alcanzan para cubrir la cantidad solicitada. Missing es la cantidad que
// quedó sin cubrir después de recorrer todos los lotes.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Missing     int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s: faltan %d unidades", e.ProductName, e.Missing)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NoLotsAvailableError indica que el producto no tiene ningún lote disponible.
type NoLotsAvailableError struct {
	ProductID   string
	ProductName string
}

func (e *NoLotsAvailableError) Error() string {
	return fmt.Sprintf("ningún lote disponible para el producto: %s", e.ProductName)
}

// Unwrap permite errors.Is(err, ErrNoLotsAvailable).
func (e *NoLotsAvailableError) Unwrap() error { return ErrNoLotsAvailable }
