// Package pdf implementa el reporte gerencial de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Periodo del reporte                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Cliente | Método de pago | Monto             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: N° ventas / Promedio / TOTAL DEL PERIODO           │
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

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/reports"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSalesReportGenerator implementa reports.SalesReportGenerator usando Maroto v2.
type MarotoSalesReportGenerator struct{}

// NewMarotoSalesReportGenerator construye el generador.
func NewMarotoSalesReportGenerator() *MarotoSalesReportGenerator {
	return &MarotoSalesReportGenerator{}
}

// GenerateSalesReport genera el PDF del periodo y devuelve sus bytes.
func (g *MarotoSalesReportGenerator) GenerateSalesReport(_ context.Context, data reports.SalesReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableSaleRows(data.Sales, data.ClientNames) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y periodo (der).
func headerRow(data reports.SalesReportData) core.Row {
	periodo := fmt.Sprintf("%s — %s",
		data.From.Format("02/01/2006"), data.To.Format("02/01/2006"))

	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Periodo", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ventas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Cliente", 4, align.Left),
		h("Método de pago", 3, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tableSaleRows: una fila por venta. Las referencias colgantes a cliente se
// muestran con un guion.
func tableSaleRows(sales []*entity.Sale, clientNames map[string]string) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		clientName, ok := clientNames[s.ClientID]
		if !ok {
			clientName = "—"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.SaleDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				clientName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				s.PaymentMethod,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+s.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. Los componentes de una
// misma columna comparten el origen Y: cada línea apilada lleva su propio Top.
func totalsRow(data reports.SalesReportData) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	const (
		line1 = 2
		line2 = 9
		line3 = 17
	)
	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Número de ventas:", line1),
			label("Venta promedio:", line2),
			grandLabel("TOTAL DEL PERIODO:", line3),
		),
		col.New(5).Add(
			value(fmt.Sprintf("%d", data.Stats.Count), line1),
			value("$"+data.Stats.Average.StringFixed(2), line2),
			grandValue("$"+data.Stats.Total.StringFixed(2), line3),
		),
	)
}
