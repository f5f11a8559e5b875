package budget

import (
	"fmt"

	"orcamento-backend/internal/calc"
	"orcamento-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// GenerateBudgetListExcel monta a planilha da listagem de orçamentos.
func GenerateBudgetListExcel(budgets []models.Budget) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Orçamentos"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("renomear sheet: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	widths := []float64{12, 30, 14, 12, 16, 16, 16, 14, 12, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("largura da coluna %s: %w", c, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo do cabeçalho: %w", err)
	}

	headers := []string{
		"Pedido", "Cliente", "Status", "Vendedor", "Total compra",
		"Total venda", "Total c/ IPI", "Lucrat. (%)", "Comissão", "Criado em",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", columns[i])
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("cabeçalho %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "J1", headerStyle); err != nil {
		return nil, fmt.Errorf("aplicar estilo do cabeçalho: %w", err)
	}

	for i, b := range budgets {
		rowIdx := i + 2
		values := []any{
			b.OrderNumber,
			b.ClientName,
			string(b.Status),
			b.CreatedBy,
			b.TotalPurchaseValue,
			b.TotalSaleValue,
			b.TotalFinalValue,
			calc.RoundPercentDisplay(b.Profitability),
			b.TotalCommission,
			b.CreatedAt.Format("02/01/2006"),
		}
		for j, v := range values {
			cell := fmt.Sprintf("%s%d", columns[j], rowIdx)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("célula %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
