package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/stock-lotes-api/internal/application/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
)

func producto(id, name string) *entity.Product {
	return &entity.Product{ID: id, Name: name, Reference: "REF-" + id}
}

func loteDe(id, productID string, entrada time.Time, restante int64, costo string) *entity.Lot {
	status := entity.LotStatusAvailable
	if restante == 0 {
		status = entity.LotStatusDepleted
	}
	return &entity.Lot{
		ID:           id,
		Number:       "LOT-2024-" + id,
		ProductID:    productID,
		EntryDate:    entrada,
		InitialQty:   restante,
		RemainingQty: restante,
		UnitCost:     decimal.RequireFromString(costo),
		Status:       status,
	}
}

func TestConsumeFIFO_RepartoEntreLotesYMovimientos(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p := producto("prod-1", "Tornillo M6")
	l1 := loteDe("l1", p.ID, base, 5, "10.00")
	l2 := loteDe("l2", p.ID, base.Add(24*time.Hour), 8, "11.50")
	lots := &fakeLotRepo{lots: []*entity.Lot{l2, l1}}
	movements := &fakeMovementRepo{}

	now := base.Add(72 * time.Hour)
	created, err := appinv.ConsumeFIFO(lots, movements, p, "vale-1", 12, now)

	require.NoError(t, err)
	require.Len(t, created, 2)

	// El lote más antiguo se agota primero y queda DEPLETED.
	assert.Equal(t, int64(0), l1.RemainingQty)
	assert.Equal(t, entity.LotStatusDepleted, l1.Status)
	assert.Equal(t, int64(1), l2.RemainingQty)
	assert.Equal(t, entity.LotStatusAvailable, l2.Status)

	// Un movimiento OUT por lote tocado, al costo del lote y enlazado al vale.
	assert.Equal(t, entity.MovementTypeOUT, created[0].Type)
	assert.Equal(t, int64(5), created[0].Quantity)
	assert.True(t, created[0].UnitCost.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "l1", created[0].LotID)
	assert.Equal(t, "vale-1", created[0].ExitVoucherID)
	assert.Equal(t, int64(7), created[1].Quantity)
	assert.True(t, created[1].UnitCost.Equal(decimal.RequireFromString("11.50")))
	assert.Len(t, movements.movements, 2)
}

func TestConsumeFIFO_ConsumoExactoDejaLoteAgotado(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p := producto("prod-1", "Tornillo M6")
	l1 := loteDe("l1", p.ID, base, 100, "10.00")
	lots := &fakeLotRepo{lots: []*entity.Lot{l1}}
	movements := &fakeMovementRepo{}

	created, err := appinv.ConsumeFIFO(lots, movements, p, "vale-1", 100, base)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, int64(0), l1.RemainingQty)
	assert.Equal(t, entity.LotStatusDepleted, l1.Status)
}

func TestConsumeFIFO_StockInsuficienteConFaltante(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p := producto("prod-1", "Tornillo M6")
	l1 := loteDe("l1", p.ID, base, 5, "10.00")
	l2 := loteDe("l2", p.ID, base.Add(time.Hour), 8, "11.00")
	lots := &fakeLotRepo{lots: []*entity.Lot{l1, l2}}
	movements := &fakeMovementRepo{}

	_, err := appinv.ConsumeFIFO(lots, movements, p, "vale-1", 18, base)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, "Tornillo M6", insufErr.ProductName)
	assert.Equal(t, int64(5), insufErr.Missing)

	// Nada persistido: ni descuentos ni movimientos.
	assert.Equal(t, int64(5), l1.RemainingQty)
	assert.Equal(t, int64(8), l2.RemainingQty)
	assert.Empty(t, movements.movements)
}

func TestConsumeFIFO_SinLotesDisponibles(t *testing.T) {
	p := producto("prod-1", "Tornillo M6")
	lots := &fakeLotRepo{}
	movements := &fakeMovementRepo{}

	_, err := appinv.ConsumeFIFO(lots, movements, p, "vale-1", 10, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoLotsAvailable)
}

func TestConsumeFIFO_CantidadCeroSinLotesTambienFalla(t *testing.T) {
	// Incluso pidiendo cero unidades, un producto sin lotes es un error:
	// la validación del vale exige que el producto tenga al menos un lote.
	p := producto("prod-1", "Tornillo M6")
	lots := &fakeLotRepo{}
	movements := &fakeMovementRepo{}

	_, err := appinv.ConsumeFIFO(lots, movements, p, "vale-1", 0, time.Now())

	assert.ErrorIs(t, err, domain.ErrNoLotsAvailable)
}
