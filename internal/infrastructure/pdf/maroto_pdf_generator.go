// Package pdf implementa el documento imprimible del vale de salida que
// acompaña físicamente al material entregado al taller.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Vale de salida N° + Fecha + Estado                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINO: Taller + Motivo                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Referencia | Producto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Entrega / Recibe                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appvoucher "github.com/jhoicas/stock-lotes-api/internal/application/voucher"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appvoucher.VoucherPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa voucher.VoucherPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateVoucherPDF genera el PDF del vale y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateVoucherPDF(
	_ context.Context,
	voucher *entity.ExitVoucher,
	workshop *entity.Workshop,
	lines []appvoucher.VoucherLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vale de salida "+voucher.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(voucher))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(destinoRow(voucher, workshop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + número (izq) y fecha + estado (der).
func headerRow(voucher *entity.ExitVoucher) core.Row {
	fecha := voucher.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("VALE DE SALIDA DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(voucher.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Estado: "+estadoLabel(voucher.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// destinoRow: taller destino y motivo de la salida.
func destinoRow(voucher *entity.ExitVoucher, workshop *entity.Workshop) core.Row {
	taller := "—"
	if workshop != nil {
		taller = workshop.Name
	}
	motivo := voucher.Reason
	if motivo == "" {
		motivo = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Taller: %s   |   Motivo: %s", taller, motivo),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Referencia", 3, align.Left),
		h("Producto", 7, align.Left),
	)
}

// tableDetailRows: una fila por línea del vale.
func tableDetailRows(lines []appvoucher.VoucherLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.Reference,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(7).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// signatureRow: espacios de firma para quien entrega y quien recibe.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_______________________", props.Text{
				Size: 9, Align: align.Center, Top: 12, Color: colorGray,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 18, Color: colorGray,
			}),
		)
	}
	return row.New(24).Add(
		sig("Entrega (almacén)"),
		sig("Recibe (taller)"),
	)
}

func estadoLabel(status string) string {
	switch status {
	case entity.VoucherStatusDraft:
		return "BORRADOR"
	case entity.VoucherStatusValidated:
		return "VALIDADO"
	case entity.VoucherStatusCancelled:
		return "CANCELADO"
	}
	return status
}
