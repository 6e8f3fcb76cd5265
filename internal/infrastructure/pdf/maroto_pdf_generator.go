// Package pdf implementa la versión imprimible del reporte de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Período + Rango de fechas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Ingresos / Órdenes / Ganancia (+ variación)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos más vendidos (Cant | Producto | Ingreso)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos con stock bajo (Producto | SKU | Stock)   │
//	│  FOOTER: fecha de exportación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/petshop-pos/internal/application/analytics"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain/stats"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ analytics.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(report *dto.ReportDTO, shopName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, shopName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Productos más vendidos
	m.AddRows(sectionTitleRow("PRODUCTOS MÁS VENDIDOS"))
	if len(report.TopProducts) == 0 {
		m.AddRows(emptyRow("Sin ventas registradas."))
	} else {
		m.AddRows(topTableHeaderRow())
		for _, r := range topTableRows(report.TopProducts) {
			m.AddRows(r)
		}
	}

	// Stock bajo
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("PRODUCTOS CON STOCK BAJO"))
	if len(report.LowStockProducts) == 0 {
		m.AddRows(emptyRow("Sin alertas de stock."))
	} else {
		m.AddRows(stockTableHeaderRow())
		for _, r := range stockTableRows(report.LowStockProducts) {
			m.AddRows(r)
		}
	}

	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y período + rango de fechas (der).
func headerRow(report *dto.ReportDTO, shopName string) core.Row {
	rango := fmt.Sprintf("%s — %s",
		report.DateRange.Start.Format("02/01/2006"),
		report.DateRange.End.Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(periodLabel(report.Period), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// metricsRow: las tres métricas del período, con su variación debajo.
func metricsRow(report *dto.ReportDTO) core.Row {
	metric := func(label, value string, change stats.Change) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 6,
			}),
			text.New(changeLabel(change), props.Text{
				Size: 8, Align: align.Center, Top: 14, Color: changeColor(change),
			}),
		)
	}
	return row.New(20).Add(
		metric("INGRESOS", "$"+formatMoney(report.Revenue.StringFixed(0)), report.RevenueChange),
		metric("ÓRDENES", fmt.Sprintf("%d", report.Orders), report.OrdersChange),
		metric("GANANCIA", "$"+formatMoney(report.Profit.StringFixed(0)), report.ProfitChange),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func emptyRow(message string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(message, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

// topTableHeaderRow: cabecera de la tabla del ranking.
func topTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("#", 1, align.Center),
		h("Producto", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Cant. vendida", 2, align.Center),
		h("Ingreso", 2, align.Right),
	)
}

// topTableRows: una fila por producto del ranking.
func topTableRows(top []dto.TopProductDTO) []core.Row {
	result := make([]core.Row, 0, len(top))
	for i, p := range top {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", p.SoldQuantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(p.Revenue.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// stockTableHeaderRow: cabecera de la tabla de stock bajo.
func stockTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Producto", 6, align.Left),
		h("SKU", 3, align.Left),
		h("Stock", 3, align.Center),
	)
}

// stockTableRows: una fila por producto en alerta. Stock cero se resalta.
func stockTableRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockColor := colorGray
		if p.Stock == 0 {
			stockColor = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				p.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", p.Stock),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: stockColor},
			)),
		))
	}
	return result
}

func footerRow(report *dto.ReportDTO) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Exportado el "+report.ExportDate.Format("02/01/2006 15:04"),
			props.Text{Size: 6.5, Color: colorGray, Top: 4, Align: align.Right},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(period string) string {
	switch period {
	case "week":
		return "ESTA SEMANA"
	case "month":
		return "ESTE MES"
	default:
		return "HOY"
	}
}

func changeLabel(c stats.Change) string {
	if c.IsPositive {
		return "▲ " + c.Percentage + "% vs período anterior"
	}
	return "▼ " + c.Percentage + "% vs período anterior"
}

func changeColor(c stats.Change) *props.Color {
	if c.IsPositive {
		return colorGreen
	}
	return colorRed
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
