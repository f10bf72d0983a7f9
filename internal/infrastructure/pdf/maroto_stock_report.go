// Package pdf implementa la generación del Relatório de Estoque en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Estoque  │  Período + Generado em      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total em estoque / Entradas / Saídas / Baixos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PRODUCTOS: Código | Produto | Grupo | Estoque | Mín  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MOVIMIENTOS: Data | Produto | Tipo | Qtd | Saldo     │
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

	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
	"github.com/nutrimilho/estoque-api/internal/domain/entity"
	"github.com/nutrimilho/estoque-api/internal/domain/inventory"
	"github.com/nutrimilho/estoque-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorAmber   = &props.Color{Red: 180, Green: 83, Blue: 9}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa reports.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(data *dto.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos
	m.AddRows(sectionTitleRow("PRODUTOS"))
	m.AddRows(productHeaderRow())
	for _, r := range productRows(data.Products) {
		m.AddRows(r)
	}

	// Tabla de movimientos del período
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("MOVIMENTAÇÕES DO PERÍODO"))
	if len(data.Movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	} else {
		m.AddRows(movementHeaderRow())
		for _, r := range movementRows(data.Movements) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período + fecha de generación (der).
func headerRow(data *dto.StockReportData) core.Row {
	scope := "Todos os grupos"
	if data.GroupName != "" {
		scope = "Grupo: " + data.GroupName
	}
	periodo := fmt.Sprintf("Período: %s a %s",
		data.From.Format("02/01/2006"), data.To.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Relatório de Estoque", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Gerado em: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los cuatro indicadores del dashboard.
func summaryRow(data *dto.StockReportData) core.Row {
	cell := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6, Color: valueColor,
			}),
		)
	}
	lowColor := colorPrimary
	if data.LowStockCount > 0 {
		lowColor = colorRed
	}
	return row.New(16).Add(
		cell("Total em estoque", format.Quantity(data.TotalStock), colorPrimary),
		cell("Entradas no período", format.Quantity(data.TotalEntries), colorPrimary),
		cell("Saídas no período", format.Quantity(data.TotalExits), colorPrimary),
		cell("Produtos abaixo do mínimo", fmt.Sprintf("%d", data.LowStockCount), lowColor),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func productHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Código", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Grupo", 2, align.Left),
		h("Estoque", 2, align.Right),
		h("Mínimo", 1, align.Right),
		h("Status", 1, align.Center),
	)
}

func productRows(rows []dto.ReportProductRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, p := range rows {
		min := "—"
		if p.MinStock != nil {
			min = format.Quantity(*p.MinStock)
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.Code, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(p.GroupName, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(
				format.Quantity(p.Stock)+" "+p.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(1).Add(text.New(min, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
			col.New(1).Add(text.New(statusLabel(p.Status), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1.5,
				Color: statusColor(p.Status),
			})),
		))
	}
	return result
}

func movementHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Data", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Qtd", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Empresa", 1, align.Left),
	)
}

func movementRows(rows []dto.ReportMovementRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, mv := range rows {
		typeColor := colorPrimary
		if mv.Type == entity.MovementTypeSaida {
			typeColor = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				mv.Date.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Top: 1, Color: colorGray},
			)),
			col.New(4).Add(text.New(
				fmt.Sprintf("%s — %s", mv.ProductCode, mv.ProductName),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(1).Add(text.New(mv.Type, props.Text{
				Style: fontstyle.Bold, Size: 7.5, Align: align.Center, Top: 1,
				Color: typeColor,
			})),
			col.New(2).Add(text.New(
				format.Quantity(mv.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				format.Quantity(mv.NewStock),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(1).Add(text.New(mv.Company, props.Text{
				Size: 7.5, Top: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case string(inventory.StatusZero):
		return "ZERADO"
	case string(inventory.StatusLow):
		return "BAIXO"
	default:
		return "OK"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case string(inventory.StatusZero):
		return colorRed
	case string(inventory.StatusLow):
		return colorAmber
	default:
		return colorPrimary
	}
}
