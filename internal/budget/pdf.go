package budget

import (
	"fmt"
	"time"

	"orcamento-backend/internal/calc"
	"orcamento-backend/internal/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renderiza o orçamento em PDF. A variante simplificada mostra só
// o que vai para o cliente (descrição, peso, preço, prazo); a completa inclui
// custos, margens e comissão.
func GeneratePDF(b models.Budget, simplified bool) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, b)
	if simplified {
		addSimplifiedTable(m, b)
	} else {
		addFullTable(m, b)
		addPDFSummary(m, b)
	}
	addPDFFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, b models.Budget) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Orçamento %s", b.OrderNumber), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New("Cliente: "+b.ClientName, props.Text{Size: 9, Align: align.Left, Color: gray}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Frete: %s   Pagamento: %s", b.FreightType, b.PaymentCondition), props.Text{Size: 9, Align: align.Center, Color: gray}),
			),
			col.New(4).Add(
				text.New("Data: "+b.CreatedAt.Format("02/01/2006"), props.Text{Size: 9, Align: align.Right, Color: gray}),
			),
		),
	)

	m.AddRows(row.New(4))
}

var pdfHeaderText = props.Text{
	Size:  8,
	Style: fontstyle.Bold,
	Align: align.Center,
	Color: &props.Color{Red: 255, Green: 255, Blue: 255},
}

var pdfHeaderCell = props.Cell{
	BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41},
}

func headerCol(size int, label string) core.Col {
	return col.New(size).Add(text.New(label, pdfHeaderText)).WithStyle(&pdfHeaderCell)
}

func addSimplifiedTable(m core.Maroto, b models.Budget) {
	m.AddRows(
		row.New(8).Add(
			headerCol(5, "Descrição"),
			headerCol(2, "Peso (kg)"),
			headerCol(2, "R$/kg c/ ICMS"),
			headerCol(2, "Total c/ IPI"),
			headerCol(1, "Prazo"),
		),
	)

	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}

	for _, it := range b.Items {
		m.AddRows(
			row.New(7).Add(
				col.New(5).Add(text.New(it.Description, leftText)),
				col.New(2).Add(text.New(formatBRL(it.SaleWeight), rightText)),
				col.New(2).Add(text.New(formatBRL(it.SaleValueWithICMS), rightText)),
				col.New(2).Add(text.New(formatBRL(it.TotalWithIPI), rightText)),
				col.New(1).Add(text.New(it.DeliveryTime, baseText)),
			),
		)
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total do orçamento (com IPI)", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
			col.New(3).Add(text.New("R$ "+formatBRL(b.TotalFinalValue), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
	)
}

func addFullTable(m core.Maroto, b models.Budget) {
	m.AddRows(
		row.New(8).Add(
			headerCol(3, "Descrição"),
			headerCol(1, "Peso compra"),
			headerCol(1, "Peso venda"),
			headerCol(1, "Compra s/ imp."),
			headerCol(1, "Venda s/ imp."),
			headerCol(1, "Total compra"),
			headerCol(1, "Total venda"),
			headerCol(1, "Lucrat."),
			headerCol(1, "Comissão"),
			headerCol(1, "Total c/ IPI"),
		),
	)

	leftText := props.Text{Size: 7, Align: align.Left}
	rightText := props.Text{Size: 7, Align: align.Right}

	for _, it := range b.Items {
		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(it.Description, leftText)),
				col.New(1).Add(text.New(formatBRL(it.PurchaseWeight), rightText)),
				col.New(1).Add(text.New(formatBRL(it.SaleWeight), rightText)),
				col.New(1).Add(text.New(formatBRL(it.PurchaseValueWithoutTaxes), rightText)),
				col.New(1).Add(text.New(formatBRL(it.SaleValueWithoutTaxes), rightText)),
				col.New(1).Add(text.New(formatBRL(it.TotalPurchase), rightText)),
				col.New(1).Add(text.New(formatBRL(it.TotalSale), rightText)),
				col.New(1).Add(text.New(formatPct(it.UnitProfitability), rightText)),
				col.New(1).Add(text.New(formatBRL(it.CommissionValue), rightText)),
				col.New(1).Add(text.New(formatBRL(it.TotalWithIPI), rightText)),
			),
		)
	}
}

func addPDFSummary(m core.Maroto, b models.Budget) {
	m.AddRows(row.New(4))

	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 8, Align: align.Right}

	summary := []struct {
		name string
		val  string
	}{
		{"Total de compra", "R$ " + formatBRL(b.TotalPurchaseValue)},
		{"Total de venda (s/ impostos)", "R$ " + formatBRL(b.TotalSaleValue)},
		{"Total de venda (c/ ICMS)", "R$ " + formatBRL(b.TotalSaleWithICMS)},
		{"Comissão total", "R$ " + formatBRL(b.TotalCommission)},
		{"IPI total", "R$ " + formatBRL(b.TotalIPIValue)},
		{"Total final (c/ IPI)", "R$ " + formatBRL(b.TotalFinalValue)},
		{"Lucratividade", formatPct(b.Profitability)},
	}

	for _, s := range summary {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(s.name, label)),
				col.New(3).Add(text.New(s.val, value)),
			),
		)
	}
}

func addPDFFooter(m core.Maroto) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New("Gerado em "+time.Now().Format("02/01/2006 15:04"), props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}

func formatBRL(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatPct(fraction float64) string {
	return fmt.Sprintf("%.2f%%", calc.RoundPercentDisplay(fraction))
}
