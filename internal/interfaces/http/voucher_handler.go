package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/application/voucher"
)

// VoucherHandler maneja las peticiones HTTP de vales de salida (protegido).
type VoucherHandler struct {
	uc  *voucher.VoucherUseCase
	pdf *voucher.PDFUseCase
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *voucher.VoucherUseCase, pdf *voucher.PDFUseCase) *VoucherHandler {
	return &VoucherHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear vale de salida (borrador)
// @Tags         vouchers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVoucherRequest  true  "reason, workshop_id, lines"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vouchers [post]
func (h *VoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Validate godoc
// @Summary      Validar vale de salida (consumo FIFO atómico)
// @Tags         vouchers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vouchers/{id}/validate [post]
func (h *VoucherHandler) Validate(c *fiber.Ctx) error {
	resp, err := h.uc.Validate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Cancel godoc
// @Summary      Cancelar vale de salida en borrador
// @Tags         vouchers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vouchers/{id}/cancel [post]
func (h *VoucherHandler) Cancel(c *fiber.Ctx) error {
	resp, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener vale de salida
// @Tags         vouchers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vouchers/{id} [get]
func (h *VoucherHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar vales de salida
// @Tags         vouchers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados (defecto 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.VoucherResponse
// @Router       /api/vouchers [get]
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "vouchers": list})
}

// DownloadPDF godoc
// @Summary      Descargar el vale de salida en PDF
// @Tags         vouchers
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vouchers/{id}/pdf [get]
func (h *VoucherHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadVoucherPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
