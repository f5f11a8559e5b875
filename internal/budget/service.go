// Package budget expõe o serviço de orçamentos: validação de entrada,
// pré-visualização de cálculo, persistência com escopo por dono e exportação.
package budget

import (
	"fmt"
	"strings"
	"time"

	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/calc"
	"orcamento-backend/internal/models"
)

type ItemRequest struct {
	Description           string  `json:"description"`
	PurchaseWeight        float64 `json:"purchase_weight"`
	SaleWeight            float64 `json:"sale_weight"`
	PurchaseValueWithICMS float64 `json:"purchase_value_with_icms"`
	SaleValueWithICMS     float64 `json:"sale_value_with_icms"`
	ICMSPurchase          float64 `json:"icms_purchase"`
	ICMSSale              float64 `json:"icms_sale"`
	IPI                   float64 `json:"ipi"`
	OtherExpensesPerKg    float64 `json:"other_expenses_per_kg"`
	DeliveryTime          string  `json:"delivery_time"`
}

type CalculateRequest struct {
	Items               []ItemRequest `json:"items"`
	FreightValueTotal   float64       `json:"freight_value_total"`
	SharedOtherExpenses float64       `json:"outras_despesas_totais"`
}

type BudgetRequest struct {
	ClientName          string        `json:"client_name"`
	OrderNumber         string        `json:"order_number"`
	Status              string        `json:"status"`
	Notes               string        `json:"notes"`
	ExpiresAt           *time.Time    `json:"expires_at"`
	Origin              string        `json:"origin"`
	PaymentCondition    string        `json:"payment_condition"`
	FreightType         string        `json:"freight_type"`
	FreightValueTotal   float64       `json:"freight_value_total"`
	SharedOtherExpenses float64       `json:"outras_despesas_totais"`
	Items               []ItemRequest `json:"items"`
}

// ItemCalculationResponse: linha enriquecida na forma da API. Percentuais de
// exibição saem ×100; as frações internas ficam na persistência.
type ItemCalculationResponse struct {
	Description           string  `json:"description"`
	PurchaseWeight        float64 `json:"purchase_weight"`
	SaleWeight            float64 `json:"sale_weight"`
	PurchaseValueWithICMS float64 `json:"purchase_value_with_icms"`
	SaleValueWithICMS     float64 `json:"sale_value_with_icms"`
	ICMSPurchase          float64 `json:"icms_purchase"`
	ICMSSale              float64 `json:"icms_sale"`
	IPI                   float64 `json:"ipi"`
	OtherExpensesPerKg    float64 `json:"other_expenses_per_kg"`
	DeliveryTime          string  `json:"delivery_time"`

	PurchaseValueWithoutTaxes    float64 `json:"purchase_value_without_taxes"`
	WeightCorrectedPurchaseValue float64 `json:"weight_corrected_purchase_value"`
	SaleValueWithoutTaxes        float64 `json:"sale_value_without_taxes"`
	WeightDifference             float64 `json:"weight_difference"`
	WeightDifferenceDisplay      string  `json:"weight_difference_display"`
	UnitSaleValue                float64 `json:"unit_sale_value"`
	ProfitabilityPercentage      float64 `json:"profitability_percentage"`
	TotalProfitabilityPercentage float64 `json:"total_profitability_percentage"`
	CommissionPercentageActual   float64 `json:"commission_percentage_actual"`
	CommissionValue              float64 `json:"commission_value"`
	TotalPurchase                float64 `json:"total_purchase"`
	TotalSale                    float64 `json:"total_sale"`
	TotalSaleWithICMS            float64 `json:"total_sale_with_icms"`
	IPIValue                     float64 `json:"ipi_value"`
	TotalWithIPI                 float64 `json:"total_with_ipi"`
}

type CalculateResponse struct {
	ItemsCalculations []ItemCalculationResponse `json:"items_calculations"`

	TotalPurchaseValue              float64 `json:"total_purchase_value"`
	TotalSaleValue                  float64 `json:"total_sale_value"`
	TotalSaleWithICMS               float64 `json:"total_sale_with_icms"`
	TotalCommission                 float64 `json:"total_commission"`
	ProfitabilityPercentage         float64 `json:"profitability_percentage"`
	MarkupPercentage                float64 `json:"markup_percentage"`
	TotalIPIValue                   float64 `json:"total_ipi_value"`
	TotalFinalValue                 float64 `json:"total_final_value"`
	TotalWeightDifferencePercentage float64 `json:"total_weight_difference_percentage"`
}

func toItemInput(it ItemRequest) calc.ItemInput {
	return calc.ItemInput{
		Description:           it.Description,
		PurchaseWeight:        it.PurchaseWeight,
		SaleWeight:            it.SaleWeight,
		PurchaseValueWithICMS: it.PurchaseValueWithICMS,
		SaleValueWithICMS:     it.SaleValueWithICMS,
		ICMSPurchase:          it.ICMSPurchase,
		ICMSSale:              it.ICMSSale,
		IPI:                   it.IPI,
		OtherExpensesPerKg:    it.OtherExpensesPerKg,
		DeliveryTime:          it.DeliveryTime,
	}
}

func toItemInputs(items []ItemRequest) []calc.ItemInput {
	inputs := make([]calc.ItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, toItemInput(it))
	}
	return inputs
}

// ValidateBudgetInput acumula todas as mensagens de validação (vazio = ok).
// requireItems vale na criação; no PUT sem itens a lista pode vir vazia.
func ValidateBudgetInput(req BudgetRequest, requireItems bool) []string {
	var msgs []string

	if strings.TrimSpace(req.ClientName) == "" {
		msgs = append(msgs, "nome do cliente é obrigatório")
	}
	if requireItems && len(req.Items) == 0 {
		msgs = append(msgs, "orçamento precisa de pelo menos um item")
	}
	if req.Status != "" && !models.BudgetStatus(req.Status).Valid() {
		msgs = append(msgs, fmt.Sprintf("status desconhecido: %q", req.Status))
	}
	if req.FreightType != "" && !models.FreightType(req.FreightType).Valid() {
		msgs = append(msgs, fmt.Sprintf("tipo de frete desconhecido: %q (use FOB ou CIF)", req.FreightType))
	}
	if !models.ValidOrigin(req.Origin) {
		msgs = append(msgs, fmt.Sprintf("origem desconhecida: %q", req.Origin))
	}
	if req.FreightValueTotal < 0 {
		msgs = append(msgs, "valor total de frete não pode ser negativo")
	}
	if req.SharedOtherExpenses < 0 {
		msgs = append(msgs, "outras despesas totais não podem ser negativas")
	}

	for i, it := range req.Items {
		for _, m := range calc.ValidateItem(toItemInput(it)) {
			msgs = append(msgs, fmt.Sprintf("item %d: %s", i+1, m))
		}
	}

	return msgs
}

// Calculate roda o kernel sem persistir nada (endpoint de pré-visualização).
func Calculate(items []ItemRequest, freightTotal, sharedOtherExpenses float64) (CalculateResponse, []calc.ItemComputed, calc.Totals, error) {
	computed, totals, err := calc.ComputeBudget(toItemInputs(items), freightTotal, sharedOtherExpenses)
	if err != nil {
		return CalculateResponse{}, nil, calc.Totals{}, err
	}
	return shapeResponse(computed, totals), computed, totals, nil
}

func shapeResponse(computed []calc.ItemComputed, totals calc.Totals) CalculateResponse {
	resp := CalculateResponse{
		ItemsCalculations:               make([]ItemCalculationResponse, 0, len(computed)),
		TotalPurchaseValue:              totals.TotalPurchaseValue,
		TotalSaleValue:                  totals.TotalSaleValue,
		TotalSaleWithICMS:               totals.TotalSaleWithICMS,
		TotalCommission:                 totals.TotalCommission,
		ProfitabilityPercentage:         calc.RoundPercentDisplay(totals.Profitability),
		MarkupPercentage:                calc.RoundPercentDisplay(totals.Markup),
		TotalIPIValue:                   totals.TotalIPIValue,
		TotalFinalValue:                 totals.TotalFinalValue,
		TotalWeightDifferencePercentage: totals.TotalWeightDifferencePct,
	}
	for _, it := range computed {
		resp.ItemsCalculations = append(resp.ItemsCalculations, ItemCalculationResponse{
			Description:           it.Description,
			PurchaseWeight:        it.PurchaseWeight,
			SaleWeight:            it.SaleWeight,
			PurchaseValueWithICMS: it.PurchaseValueWithICMS,
			SaleValueWithICMS:     it.SaleValueWithICMS,
			ICMSPurchase:          it.ICMSPurchase,
			ICMSSale:              it.ICMSSale,
			IPI:                   it.IPI,
			OtherExpensesPerKg:    it.OtherExpensesPerKg,
			DeliveryTime:          it.DeliveryTime,

			PurchaseValueWithoutTaxes:    it.PurchaseValueWithoutTaxes,
			WeightCorrectedPurchaseValue: it.WeightCorrectedPurchaseValue,
			SaleValueWithoutTaxes:        it.SaleValueWithoutTaxes,
			WeightDifference:             it.WeightDifference,
			WeightDifferenceDisplay:      it.WeightDifferenceDisplay,
			UnitSaleValue:                it.UnitSaleValue,
			ProfitabilityPercentage:      calc.RoundPercentDisplay(it.UnitProfitability),
			TotalProfitabilityPercentage: calc.RoundPercentDisplay(it.TotalProfitability),
			CommissionPercentageActual:   calc.RoundPercentDisplay(it.CommissionPercentage),
			CommissionValue:              it.CommissionValue,
			TotalPurchase:                it.TotalPurchase,
			TotalSale:                    it.TotalSale,
			TotalSaleWithICMS:            it.TotalSaleWithICMS,
			IPIValue:                     it.IPIValue,
			TotalWithIPI:                 it.TotalWithIPI,
		})
	}
	return resp
}

// PrepareForPersistence monta o modelo pronto para gravar: metadados do
// vendedor, carimbo do autor, status padrão draft e itens na ordem de entrada.
// Número de pedido vazio é atribuído depois, dentro da transação de criação.
func PrepareForPersistence(req BudgetRequest, computed []calc.ItemComputed, totals calc.Totals, actor auth.Actor) models.Budget {
	status := models.BudgetStatus(req.Status)
	if status == "" {
		status = models.StatusDraft
	}

	b := models.Budget{
		OrderNumber:      strings.TrimSpace(req.OrderNumber),
		CreatedBy:        actor.Username,
		ClientName:       strings.TrimSpace(req.ClientName),
		Status:           status,
		Notes:            req.Notes,
		ExpiresAt:        req.ExpiresAt,
		Origin:           req.Origin,
		PaymentCondition: req.PaymentCondition,
		FreightType:      models.FreightType(req.FreightType),

		FreightValueTotal:   req.FreightValueTotal,
		SharedOtherExpenses: req.SharedOtherExpenses,

		TotalPurchaseValue:       totals.TotalPurchaseValue,
		TotalSaleValue:           totals.TotalSaleValue,
		TotalSaleWithICMS:        totals.TotalSaleWithICMS,
		TotalCommission:          totals.TotalCommission,
		Profitability:            totals.Profitability,
		Markup:                   totals.Markup,
		TotalIPIValue:            totals.TotalIPIValue,
		TotalFinalValue:          totals.TotalFinalValue,
		TotalWeightDifferencePct: totals.TotalWeightDifferencePct,
	}

	b.Items = buildItems(computed)
	return b
}

func buildItems(computed []calc.ItemComputed) []models.BudgetItem {
	items := make([]models.BudgetItem, 0, len(computed))
	for i, it := range computed {
		items = append(items, models.BudgetItem{
			Position: i,

			Description:           it.Description,
			PurchaseWeight:        it.PurchaseWeight,
			SaleWeight:            it.SaleWeight,
			PurchaseValueWithICMS: it.PurchaseValueWithICMS,
			SaleValueWithICMS:     it.SaleValueWithICMS,
			ICMSPurchase:          it.ICMSPurchase,
			ICMSSale:              it.ICMSSale,
			IPI:                   it.IPI,
			OtherExpensesPerKg:    it.OtherExpensesPerKg,
			DeliveryTime:          it.DeliveryTime,

			PurchaseValueWithoutTaxes:    it.PurchaseValueWithoutTaxes,
			WeightCorrectedPurchaseValue: it.WeightCorrectedPurchaseValue,
			SaleValueWithoutTaxes:        it.SaleValueWithoutTaxes,
			WeightDifference:             it.WeightDifference,
			WeightDifferenceDisplay:      it.WeightDifferenceDisplay,
			UnitSaleValue:                it.UnitSaleValue,
			UnitProfitability:            it.UnitProfitability,
			TotalProfitability:           it.TotalProfitability,
			CommissionPercentage:         it.CommissionPercentage,
			CommissionValue:              it.CommissionValue,
			TotalPurchase:                it.TotalPurchase,
			TotalSale:                    it.TotalSale,
			TotalSaleWithICMS:            it.TotalSaleWithICMS,
			IPIValue:                     it.IPIValue,
			TotalWithIPI:                 it.TotalWithIPI,
		})
	}
	return items
}
