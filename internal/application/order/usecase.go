package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/application/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// OrderUseCase gestiona órdenes de compra: creación, validación y recepción.
// La recepción es la única operación que crea lotes y movimientos de entrada.
type OrderUseCase struct {
	txRunner  inventory.TxRunner
	orders    repository.SupplierOrderRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner inventory.TxRunner,
	orders repository.SupplierOrderRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		orders:    orders,
		products:  products,
		suppliers: suppliers,
	}
}

// Create registra una orden en estado PENDING.
func (uc *OrderUseCase) Create(req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: la orden necesita al menos una línea", domain.ErrInvalidInput)
	}
	supplier, err := uc.suppliers.GetByID(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("leer proveedor: %w", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 || line.UnitCost.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: cantidad positiva y costo no negativo", domain.ErrInvalidInput)
		}
		p, err := uc.products.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("leer producto: %w", err)
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	o := &entity.SupplierOrder{
		ID:         uuid.New().String(),
		Number:     fmt.Sprintf("OC-%d", now.UnixMilli()),
		SupplierID: req.SupplierID,
		Date:       now,
		Status:     entity.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, line := range req.Lines {
		o.Lines = append(o.Lines, entity.SupplierOrderLine{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}
	if err := uc.orders.Create(o); err != nil {
		return nil, fmt.Errorf("crear orden: %w", err)
	}
	return toResponse(o), nil
}

// Validate ejecuta la transición PENDING → VALIDATED.
func (uc *OrderUseCase) Validate(id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer orden: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("%w: solo las órdenes pendientes pueden validarse", domain.ErrInvalidState)
	}
	o.Status = entity.OrderStatusValidated
	o.UpdatedAt = time.Now()
	if err := uc.orders.Update(o); err != nil {
		return nil, fmt.Errorf("guardar orden: %w", err)
	}
	return toResponse(o), nil
}

// Receive ejecuta la recepción de una orden validada: crea un lote por línea
// (cantidad inicial = restante = cantidad pedida, costo de la línea, número
// LOT-<año>-<secuencia>), registra un movimiento IN por lote y pasa la orden
// a DELIVERED. Todo en una transacción: una recepción parcial (lotes creados
// con la orden sin entregar) nunca es observable.
func (uc *OrderUseCase) Receive(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var received *entity.SupplierOrder
	err := uc.txRunner.RunReception(ctx, func(
		lots repository.LotRepository,
		movements repository.StockMovementRepository,
		orders repository.SupplierOrderRepository,
		_ repository.ProductRepository,
	) error {
		o, err := orders.GetByID(id)
		if err != nil {
			return fmt.Errorf("leer orden: %w", err)
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.OrderStatusValidated {
			return fmt.Errorf("%w: solo las órdenes validadas pueden recibirse", domain.ErrInvalidState)
		}

		now := time.Now()
		newLots := make([]*entity.Lot, 0, len(o.Lines))
		for _, line := range o.Lines {
			seq, err := lots.NextSequence()
			if err != nil {
				return fmt.Errorf("secuencia de lotes: %w", err)
			}
			newLots = append(newLots, &entity.Lot{
				ID:              uuid.New().String(),
				Number:          fmt.Sprintf("LOT-%d-%03d", now.Year(), seq),
				ProductID:       line.ProductID,
				EntryDate:       now,
				InitialQty:      line.Quantity,
				RemainingQty:    line.Quantity,
				UnitCost:        line.UnitCost,
				Status:          entity.LotStatusAvailable,
				SupplierOrderID: o.ID,
				CreatedAt:       now,
			})
		}
		if err := lots.CreateBatch(newLots); err != nil {
			return fmt.Errorf("crear lotes: %w", err)
		}
		for _, l := range newLots {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				Type:      entity.MovementTypeIN,
				Quantity:  l.InitialQty,
				UnitCost:  l.UnitCost,
				Date:      now,
				ProductID: l.ProductID,
				LotID:     l.ID,
				CreatedAt: now,
			}
			if err := movements.Create(mov); err != nil {
				return fmt.Errorf("registrar movimiento de entrada: %w", err)
			}
		}

		o.Status = entity.OrderStatusDelivered
		o.UpdatedAt = now
		if err := orders.Update(o); err != nil {
			return fmt.Errorf("guardar orden: %w", err)
		}
		received = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(received), nil
}

// GetByID devuelve una orden con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer orden: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(o), nil
}

// List devuelve órdenes paginadas.
func (uc *OrderUseCase) List(page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toResponse(o))
	}
	return out, nil
}

func toResponse(o *entity.SupplierOrder) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		SupplierID: o.SupplierID,
		Date:       o.Date,
		Status:     o.Status,
		Lines:      make([]dto.OrderLineResponse, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		})
	}
	return resp
}
