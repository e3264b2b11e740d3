package voucher

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// VoucherLineForPDF línea del vale enriquecida con los datos del producto.
type VoucherLineForPDF struct {
	ProductName string
	Reference   string
	Quantity    int64
}

// VoucherPDFGenerator puerto de generación del documento imprimible del vale.
type VoucherPDFGenerator interface {
	GenerateVoucherPDF(
		ctx context.Context,
		voucher *entity.ExitVoucher,
		workshop *entity.Workshop,
		lines []VoucherLineForPDF,
	) ([]byte, error)
}

// PDFUseCase genera el documento imprimible de un vale de salida.
type PDFUseCase struct {
	vouchers  repository.ExitVoucherRepository
	products  repository.ProductRepository
	workshops repository.WorkshopRepository
	generator VoucherPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	vouchers repository.ExitVoucherRepository,
	products repository.ProductRepository,
	workshops repository.WorkshopRepository,
	generator VoucherPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		vouchers:  vouchers,
		products:  products,
		workshops: workshops,
		generator: generator,
	}
}

// DownloadVoucherPDF recupera el vale con sus líneas, las enriquece con los
// datos de producto y genera el PDF. Funciona en cualquier estado: un
// borrador imprime igual que un vale validado (el estado va en el documento).
func (uc *PDFUseCase) DownloadVoucherPDF(ctx context.Context, voucherID string) (pdfBytes []byte, filename string, err error) {
	v, err := uc.vouchers.GetByID(voucherID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vale: %w", err)
	}
	if v == nil {
		return nil, "", domain.ErrNotFound
	}

	var workshop *entity.Workshop
	if v.WorkshopID != "" {
		workshop, err = uc.workshops.GetByID(v.WorkshopID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener taller: %w", err)
		}
	}

	enriched := make([]VoucherLineForPDF, 0, len(v.Lines))
	for _, line := range v.Lines {
		name := "Producto " + line.ProductID // fallback
		reference := "—"
		if product, pErr := uc.products.GetByID(line.ProductID); pErr == nil && product != nil {
			name = product.Name
			reference = product.Reference
		}
		enriched = append(enriched, VoucherLineForPDF{
			ProductName: name,
			Reference:   reference,
			Quantity:    line.Quantity,
		})
	}

	pdfBytes, err = uc.generator.GenerateVoucherPDF(ctx, v, workshop, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("vale_%s.pdf", v.Number)
	return pdfBytes, filename, nil
}
