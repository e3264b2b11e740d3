package dto

import "time"

// VoucherLineRequest línea de un vale de salida a crear.
type VoucherLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateVoucherRequest body para POST /api/vouchers.
type CreateVoucherRequest struct {
	Reason     string               `json:"reason"`
	WorkshopID string               `json:"workshop_id"`
	Lines      []VoucherLineRequest `json:"lines"`
}

// VoucherLineResponse línea de un vale en respuestas.
type VoucherLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// VoucherResponse representación de un vale de salida.
type VoucherResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	Date       time.Time             `json:"date"`
	Reason     string                `json:"reason"`
	WorkshopID string                `json:"workshop_id"`
	Status     string                `json:"status"`
	Lines      []VoucherLineResponse `json:"lines"`
}
