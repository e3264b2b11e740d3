package entity

import "time"

// Estados de un vale de salida. Las transiciones válidas son
// DRAFT → VALIDATED y DRAFT → CANCELLED; ambos destinos son terminales.
const (
	VoucherStatusDraft     = "DRAFT"
	VoucherStatusValidated = "VALIDATED"
	VoucherStatusCancelled = "CANCELLED"
)

// ExitVoucher es una solicitud interna de salida de stock con una o más
// líneas de producto. Solo la validación produce efectos sobre lotes y
// movimientos; un vale no-DRAFT nunca se re-ejecuta.
type ExitVoucher struct {
	ID         string
	Number     string // formato BS-<secuencia>
	Date       time.Time
	Reason     string
	WorkshopID string // taller destino de la salida
	Status     string
	Lines      []ExitVoucherLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ExitVoucherLine pide una cantidad de un producto dentro del vale.
type ExitVoucherLine struct {
	ID        string
	VoucherID string
	ProductID string
	Quantity  int64 // entera y positiva
}

// CanValidate indica si el vale admite la transición a VALIDATED.
func (v *ExitVoucher) CanValidate() bool { return v.Status == VoucherStatusDraft }

// CanCancel indica si el vale admite la transición a CANCELLED.
func (v *ExitVoucher) CanCancel() bool { return v.Status == VoucherStatusDraft }
