package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// MethodFIFO etiqueta del método de valorización.
const MethodFIFO = "FIFO"

// ValuationUseCase calcula la valorización FIFO del stock. Solo lectura:
// es una función pura del estado actual de los lotes.
type ValuationUseCase struct {
	lots     repository.LotRepository
	products repository.ProductRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(lots repository.LotRepository, products repository.ProductRepository) *ValuationUseCase {
	return &ValuationUseCase{lots: lots, products: products}
}

// GlobalValuation valoriza todos los lotes disponibles del sistema:
// Σ(restante × costo unitario), cantidad total, lotes activos y productos
// distintos. Un almacén vacío devuelve ceros.
func (uc *ValuationUseCase) GlobalValuation() (*dto.ValuationSummary, error) {
	available, err := uc.lots.FindAvailable()
	if err != nil {
		return nil, fmt.Errorf("leer lotes disponibles: %w", err)
	}

	total := decimal.Zero
	var quantity int64
	productSet := make(map[string]struct{})
	for _, l := range available {
		total = total.Add(decimal.NewFromInt(l.RemainingQty).Mul(l.UnitCost))
		quantity += l.RemainingQty
		productSet[l.ProductID] = struct{}{}
	}

	return &dto.ValuationSummary{
		TotalValue:           total,
		TotalQuantity:        quantity,
		ActiveLotCount:       len(available),
		DistinctProductCount: len(productSet),
		Method:               MethodFIFO,
	}, nil
}

// ProductValuation valoriza un producto sobre todos sus lotes (cualquier
// estado) en orden de entrada. Los lotes agotados aparecen en el detalle pero
// aportan cero a los totales (restante = 0).
func (uc *ValuationUseCase) ProductValuation(productID string) (*dto.ProductValuationDetail, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	all, err := uc.lots.FindByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("leer lotes del producto: %w", err)
	}

	detail := &dto.ProductValuationDetail{
		ProductID: product.ID,
		Name:      product.Name,
		Reference: product.Reference,
		Lots:      make([]dto.LotDetail, 0, len(all)),
		FIFOValue: decimal.Zero,
		Method:    MethodFIFO,
	}
	for _, l := range all {
		detail.Lots = append(detail.Lots, dto.LotDetail{
			Number:       l.Number,
			UnitCost:     l.UnitCost,
			InitialQty:   l.InitialQty,
			RemainingQty: l.RemainingQty,
			EntryDate:    l.EntryDate,
			Status:       l.Status,
		})
		detail.FIFOValue = detail.FIFOValue.Add(decimal.NewFromInt(l.RemainingQty).Mul(l.UnitCost))
		detail.TotalRemaining += l.RemainingQty
	}
	return detail, nil
}

// StockAlerts productos cuyo stock restante está por debajo de su umbral de
// reposición.
func (uc *ValuationUseCase) StockAlerts() ([]dto.StockAlert, error) {
	levels, err := uc.lots.ProductStockLevels()
	if err != nil {
		return nil, fmt.Errorf("leer niveles de stock: %w", err)
	}
	alerts := make([]dto.StockAlert, 0)
	for _, lvl := range levels {
		if lvl.Remaining < lvl.ReorderThreshold {
			alerts = append(alerts, dto.StockAlert{
				ProductID:        lvl.ProductID,
				Name:             lvl.Name,
				Reference:        lvl.Reference,
				Remaining:        lvl.Remaining,
				ReorderThreshold: lvl.ReorderThreshold,
			})
		}
	}
	return alerts, nil
}
