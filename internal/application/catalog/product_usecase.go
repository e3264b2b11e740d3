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

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create registra un producto con referencia única.
func (uc *ProductUseCase) Create(req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" || req.Reference == "" {
		return nil, fmt.Errorf("%w: nombre y referencia son obligatorios", domain.ErrInvalidInput)
	}
	if req.ReorderThreshold < 0 {
		return nil, fmt.Errorf("%w: el umbral de reposición no puede ser negativo", domain.ErrInvalidInput)
	}
	existing, err := uc.products.GetByReference(req.Reference)
	if err != nil {
		return nil, fmt.Errorf("buscar referencia: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: referencia %s", domain.ErrDuplicate, req.Reference)
	}

	now := time.Now()
	p := &entity.Product{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Reference:        req.Reference,
		ReorderThreshold: req.ReorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return productResponse(p), nil
}

// GetByID devuelve un producto.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return productResponse(p), nil
}

// Update modifica nombre y umbral de reposición (la referencia es inmutable).
func (uc *ProductUseCase) Update(id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.ReorderThreshold < 0 {
		return nil, fmt.Errorf("%w: el umbral de reposición no puede ser negativo", domain.ErrInvalidInput)
	}
	p.ReorderThreshold = req.ReorderThreshold
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(p); err != nil {
		return nil, fmt.Errorf("guardar producto: %w", err)
	}
	return productResponse(p), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.products.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *productResponse(p))
	}
	return out, nil
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Reference:        p.Reference,
		ReorderThreshold: p.ReorderThreshold,
	}
}
