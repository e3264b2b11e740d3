package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// ConsumeFIFO consume `requested` unidades de un producto repartidas entre
// sus lotes disponibles en orden de llegada, dentro de la transacción a la
// que están atados los repositorios recibidos. Por cada lote tocado descuenta
// la cantidad tomada, lo marca DEPLETED si llega a cero y registra un
// movimiento OUT al costo unitario del lote, enlazado al vale.
//
// La lectura bloquea las filas de los lotes (SELECT FOR UPDATE), así que dos
// validaciones concurrentes sobre el mismo producto se serializan; y como
// cada línea relee los lotes dentro de la misma tx, dos líneas del mismo vale
// sobre el mismo producto ven los descuentos de la anterior.
//
// Falla con NoLotsAvailableError si el producto no tiene ningún lote
// disponible, y con InsufficientStockError (con la cantidad faltante) si los
// lotes no alcanzan. En ambos casos no persiste nada: el rollback de la
// transacción envolvente descarta cualquier efecto parcial.
func ConsumeFIFO(
	lots repository.LotRepository,
	movements repository.StockMovementRepository,
	product *entity.Product,
	voucherID string,
	requested int64,
	now time.Time,
) ([]*entity.StockMovement, error) {
	available, err := lots.FindAvailableByProductForUpdate(product.ID)
	if err != nil {
		return nil, fmt.Errorf("leer lotes disponibles: %w", err)
	}
	if len(available) == 0 {
		return nil, &domain.NoLotsAvailableError{ProductID: product.ID, ProductName: product.Name}
	}

	allocations, shortfall := inventory.AllocateFIFO(available, requested)
	if shortfall > 0 {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Missing:     shortfall,
		}
	}

	created := make([]*entity.StockMovement, 0, len(allocations))
	for _, alloc := range allocations {
		alloc.Lot.Consume(alloc.Quantity)
		if err := lots.Update(alloc.Lot); err != nil {
			return nil, fmt.Errorf("actualizar lote %s: %w", alloc.Lot.Number, err)
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			Type:          entity.MovementTypeOUT,
			Quantity:      alloc.Quantity,
			UnitCost:      alloc.Lot.UnitCost,
			Date:          now,
			ProductID:     product.ID,
			LotID:         alloc.Lot.ID,
			ExitVoucherID: voucherID,
			CreatedAt:     now,
		}
		if err := movements.Create(mov); err != nil {
			return nil, fmt.Errorf("registrar movimiento de salida: %w", err)
		}
		created = append(created, mov)
	}
	return created, nil
}
