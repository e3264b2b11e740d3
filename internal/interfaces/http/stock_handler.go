package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/application/inventory"
)

// StockHandler maneja las consultas de valorización, historial y alertas (protegido).
type StockHandler struct {
	valuation *inventory.ValuationUseCase
	movements *inventory.MovementQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(valuation *inventory.ValuationUseCase, movements *inventory.MovementQueryUseCase) *StockHandler {
	return &StockHandler{valuation: valuation, movements: movements}
}

// GlobalValuation godoc
// @Summary      Valorización FIFO global del stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationSummary
// @Router       /api/stock/valuation [get]
func (h *StockHandler) GlobalValuation(c *fiber.Ctx) error {
	summary, err := h.valuation.GlobalValuation()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// ProductValuation godoc
// @Summary      Valorización FIFO de un producto, lote por lote
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductValuationDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/valuation/{id} [get]
func (h *StockHandler) ProductValuation(c *fiber.Ctx) error {
	detail, err := h.valuation.ProductValuation(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// ListMovements godoc
// @Summary      Historial de movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        lot_id      query  string  false  "filtrar por lote"
// @Param        type        query  string  false  "IN | OUT"
// @Param        from        query  string  false  "desde (RFC3339)"
// @Param        to          query  string  false  "hasta (RFC3339)"
// @Param        limit       query  int     false  "máx. resultados (defecto 20)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.movements.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

// StockAlerts godoc
// @Summary      Productos bajo el umbral de reposición
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlert
// @Router       /api/stock/alerts [get]
func (h *StockHandler) StockAlerts(c *fiber.Ctx) error {
	alerts, err := h.valuation.StockAlerts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": alerts})
}
