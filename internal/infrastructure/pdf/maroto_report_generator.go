// Package pdf implementa la generación del reporte de ventas descargable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Histórico (ingresos/ítems/ventas) + Hoy           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cant | P.Unit | Total            │
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

	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	data *reports.SalesReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(data.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen
	m.AddRows(summaryRows(data.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de ventas (más reciente primero)
	m.AddRows(tableHeaderRow())
	for _, r := range tableSaleRows(data.Sales) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(data *reports.SalesReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas e inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRows: acumulados históricos y del día.
func summaryRows(s dto.SalesSummaryResponse) []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New("RESUMEN", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("Histórico: $%s en %d ventas (%d ítems)",
					s.AllTime.Revenue.StringFixed(2), s.AllTime.SaleCount, s.AllTime.ItemsSold,
				), props.Text{Size: 8, Top: 6, Color: colorGray}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Hoy: $%s (%d ítems)",
					s.Today.Revenue.StringFixed(2), s.Today.ItemsSold,
				), props.Text{Size: 8, Top: 1, Color: colorGray}),
			),
		),
	}
}

// tableHeaderRow: encabezados de la tabla de ventas.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(3).Add(text.New("Fecha", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
	)
}

// tableSaleRows: una fila por venta.
func tableSaleRows(sales []dto.SaleResponse) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

	rows := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(s.Timestamp.Format("02/01/2006 15:04"), cell)),
			col.New(4).Add(text.New(s.ProductName, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.Quantity), cellRight)),
			col.New(2).Add(text.New("$"+s.UnitPrice.StringFixed(2), cellRight)),
			col.New(2).Add(text.New("$"+s.Total.StringFixed(2), cellRight)),
		))
	}
	return rows
}
