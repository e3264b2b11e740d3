package inventory

import (
	"sort"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
)

// Allocation indica cuántas unidades tomar de un lote concreto.
type Allocation struct {
	Lot      *entity.Lot
	Quantity int64
}

// AllocateFIFO reparte la cantidad solicitada entre los lotes disponibles en
// orden de llegada (fecha de entrada ascendente, desempate por ID para que el
// resultado sea determinista). No muta los lotes: devuelve el plan de consumo
// y la cantidad que quedó sin cubrir (shortfall > 0 = stock insuficiente).
//
// El llamador decide qué hacer con el plan; aplicarlo dentro de una
// transacción es responsabilidad de la capa de aplicación.
func AllocateFIFO(lots []*entity.Lot, requested int64) (allocations []Allocation, shortfall int64) {
	available := make([]*entity.Lot, 0, len(lots))
	for _, l := range lots {
		if l.Status == entity.LotStatusAvailable && l.RemainingQty > 0 {
			available = append(available, l)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		if available[i].EntryDate.Equal(available[j].EntryDate) {
			return available[i].ID < available[j].ID
		}
		return available[i].EntryDate.Before(available[j].EntryDate)
	})

	outstanding := requested
	for _, lot := range available {
		if outstanding <= 0 {
			break
		}
		take := outstanding
		if lot.RemainingQty < take {
			take = lot.RemainingQty
		}
		if take > 0 {
			allocations = append(allocations, Allocation{Lot: lot, Quantity: take})
			outstanding -= take
		}
	}
	return allocations, outstanding
}
