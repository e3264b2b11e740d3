package voucher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/application/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// VoucherUseCase gestiona el ciclo de vida de los vales de salida:
// creación en borrador, validación (con consumo FIFO transaccional),
// cancelación y consultas.
type VoucherUseCase struct {
	txRunner  inventory.TxRunner
	vouchers  repository.ExitVoucherRepository
	products  repository.ProductRepository
	workshops repository.WorkshopRepository
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(
	txRunner inventory.TxRunner,
	vouchers repository.ExitVoucherRepository,
	products repository.ProductRepository,
	workshops repository.WorkshopRepository,
) *VoucherUseCase {
	return &VoucherUseCase{
		txRunner:  txRunner,
		vouchers:  vouchers,
		products:  products,
		workshops: workshops,
	}
}

// Create registra un vale en estado DRAFT con sus líneas. Valida que haya al
// menos una línea, cantidades positivas y que producto y taller existan.
func (uc *VoucherUseCase) Create(req dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: el vale necesita al menos una línea", domain.ErrInvalidInput)
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		p, err := uc.products.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("leer producto: %w", err)
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}
	if req.WorkshopID != "" {
		w, err := uc.workshops.GetByID(req.WorkshopID)
		if err != nil {
			return nil, fmt.Errorf("leer taller: %w", err)
		}
		if w == nil {
			return nil, domain.ErrNotFound
		}
	}

	seq, err := uc.vouchers.NextSequence()
	if err != nil {
		return nil, fmt.Errorf("secuencia de vales: %w", err)
	}
	now := time.Now()
	v := &entity.ExitVoucher{
		ID:         uuid.New().String(),
		Number:     fmt.Sprintf("BS-%06d", seq),
		Date:       now,
		Reason:     req.Reason,
		WorkshopID: req.WorkshopID,
		Status:     entity.VoucherStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, line := range req.Lines {
		v.Lines = append(v.Lines, entity.ExitVoucherLine{
			ID:        uuid.New().String(),
			VoucherID: v.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	if err := uc.vouchers.Create(v); err != nil {
		return nil, fmt.Errorf("crear vale: %w", err)
	}
	return toResponse(v), nil
}

// Validate ejecuta la transición DRAFT → VALIDATED. Todo ocurre en una sola
// transacción: se consume FIFO línea por línea y cualquier fallo (vale
// inexistente, estado no borrador, stock insuficiente, sin lotes) aborta la
// validación completa sin efectos parciales — el vale sigue en DRAFT y no
// queda ningún lote mutado ni movimiento escrito.
func (uc *VoucherUseCase) Validate(ctx context.Context, id string) (*dto.VoucherResponse, error) {
	var validated *entity.ExitVoucher
	err := uc.txRunner.Run(ctx, func(
		lots repository.LotRepository,
		movements repository.StockMovementRepository,
		vouchers repository.ExitVoucherRepository,
		products repository.ProductRepository,
	) error {
		v, err := vouchers.GetByID(id)
		if err != nil {
			return fmt.Errorf("leer vale: %w", err)
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if !v.CanValidate() {
			return fmt.Errorf("%w: solo los vales de salida en borrador pueden validarse", domain.ErrInvalidState)
		}

		now := time.Now()
		for _, line := range v.Lines {
			product, err := products.GetByID(line.ProductID)
			if err != nil {
				return fmt.Errorf("leer producto: %w", err)
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if _, err := inventory.ConsumeFIFO(lots, movements, product, v.ID, line.Quantity, now); err != nil {
				return err
			}
		}

		v.Status = entity.VoucherStatusValidated
		v.UpdatedAt = now
		if err := vouchers.Update(v); err != nil {
			return fmt.Errorf("guardar vale: %w", err)
		}
		validated = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(validated), nil
}

// Cancel ejecuta la transición DRAFT → CANCELLED. No toca lotes ni movimientos.
func (uc *VoucherUseCase) Cancel(id string) (*dto.VoucherResponse, error) {
	v, err := uc.vouchers.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer vale: %w", err)
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if !v.CanCancel() {
		return nil, fmt.Errorf("%w: solo los vales de salida en borrador pueden cancelarse", domain.ErrInvalidState)
	}
	v.Status = entity.VoucherStatusCancelled
	v.UpdatedAt = time.Now()
	if err := uc.vouchers.Update(v); err != nil {
		return nil, fmt.Errorf("guardar vale: %w", err)
	}
	return toResponse(v), nil
}

// GetByID devuelve un vale con sus líneas.
func (uc *VoucherUseCase) GetByID(id string) (*dto.VoucherResponse, error) {
	v, err := uc.vouchers.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer vale: %w", err)
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(v), nil
}

// List devuelve vales paginados.
func (uc *VoucherUseCase) List(page dto.PageRequest) ([]dto.VoucherResponse, error) {
	page.DefaultPage()
	list, err := uc.vouchers.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar vales: %w", err)
	}
	out := make([]dto.VoucherResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toResponse(v))
	}
	return out, nil
}

func toResponse(v *entity.ExitVoucher) *dto.VoucherResponse {
	resp := &dto.VoucherResponse{
		ID:         v.ID,
		Number:     v.Number,
		Date:       v.Date,
		Reason:     v.Reason,
		WorkshopID: v.WorkshopID,
		Status:     v.Status,
		Lines:      make([]dto.VoucherLineResponse, 0, len(v.Lines)),
	}
	for _, l := range v.Lines {
		resp.Lines = append(resp.Lines, dto.VoucherLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}
	return resp
}
