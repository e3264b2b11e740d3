package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// SupplierUseCase alta y consulta de proveedores.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.suppliers.Create(s); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return supplierResponse(s), nil
}

// GetByID devuelve un proveedor.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer proveedor: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return supplierResponse(s), nil
}

// List devuelve proveedores paginados.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	list, err := uc.suppliers.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *supplierResponse(s))
	}
	return out, nil
}

func supplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone}
}

// WorkshopUseCase alta y consulta de talleres.
type WorkshopUseCase struct {
	workshops repository.WorkshopRepository
}

// NewWorkshopUseCase construye el caso de uso.
func NewWorkshopUseCase(workshops repository.WorkshopRepository) *WorkshopUseCase {
	return &WorkshopUseCase{workshops: workshops}
}

// Create registra un taller.
func (uc *WorkshopUseCase) Create(req dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	w := &entity.Workshop{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.workshops.Create(w); err != nil {
		return nil, fmt.Errorf("crear taller: %w", err)
	}
	return &dto.WorkshopResponse{ID: w.ID, Name: w.Name}, nil
}

// List devuelve talleres paginados.
func (uc *WorkshopUseCase) List(page dto.PageRequest) ([]dto.WorkshopResponse, error) {
	page.DefaultPage()
	list, err := uc.workshops.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar talleres: %w", err)
	}
	out := make([]dto.WorkshopResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.WorkshopResponse{ID: w.ID, Name: w.Name})
	}
	return out, nil
}
