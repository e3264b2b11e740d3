package inventory

import (
	"fmt"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// MovementQueryUseCase consulta el historial de movimientos. Es plomería de
// lectura: los filtros se traducen tal cual al repositorio.
type MovementQueryUseCase struct {
	movements repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movements repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movements: movements}
}

// List historial filtrado por producto, lote, tipo y rango de fechas,
// ordenado por fecha descendente y paginado.
func (uc *MovementQueryUseCase) List(q dto.MovementQuery) ([]dto.MovementResponse, error) {
	q.DefaultPage()
	list, err := uc.movements.ListByCriteria(repository.MovementFilter{
		ProductID: q.ProductID,
		LotID:     q.LotID,
		Type:      q.Type,
		From:      q.From,
		To:        q.To,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:            m.ID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			Date:          m.Date,
			ProductID:     m.ProductID,
			LotID:         m.LotID,
			ExitVoucherID: m.ExitVoucherID,
		})
	}
	return out, nil
}
