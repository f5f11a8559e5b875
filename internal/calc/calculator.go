package calc

import (
	"fmt"
	"math"
	"strings"
)

// PisCofins: alíquota federal combinada (PIS + COFINS), aplicada após o ICMS.
const PisCofins = 0.0925

// ItemInput: entradas do vendedor para uma linha do orçamento.
// Preços em R$/kg com ICMS embutido; alíquotas como frações em [0,1).
type ItemInput struct {
	Description           string
	PurchaseWeight        float64
	SaleWeight            float64 // 0 → assume PurchaseWeight
	PurchaseValueWithICMS float64
	SaleValueWithICMS     float64
	ICMSPurchase          float64
	ICMSSale              float64
	IPI                   float64
	OtherExpensesPerKg    float64 // sobretaxa por kg da própria linha (não é valor fechado)
	DeliveryTime          string
}

// ItemComputed: superconjunto estrito de ItemInput; os campos derivados são
// preenchidos exclusivamente pelo kernel. SaleWeight sai com o peso efetivo.
type ItemComputed struct {
	ItemInput

	PurchaseValueWithoutTaxes    float64
	WeightCorrectedPurchaseValue float64
	SaleValueWithoutTaxes        float64
	WeightDifference             float64
	WeightDifferenceDisplay      string
	UnitSaleValue                float64
	UnitProfitability            float64
	TotalProfitability           float64
	CommissionPercentage         float64
	CommissionValue              float64
	TotalPurchase                float64
	TotalSale                    float64
	TotalSaleWithICMS            float64
	IPIValue                     float64
	TotalWithIPI                 float64
}

// BudgetParams: parâmetros de escopo do orçamento repassados a cada item.
type BudgetParams struct {
	SharedOtherExpenses float64
	TotalFreightValue   float64
	SumPurchaseWeights  float64
}

// Totals: agregados do orçamento.
type Totals struct {
	TotalPurchaseValue       float64
	TotalSaleValue           float64 // sem impostos
	TotalSaleWithICMS        float64
	TotalCommission          float64
	Profitability            float64 // fração
	Markup                   float64 // fração (mesma fórmula, mantido por compatibilidade)
	TotalIPIValue            float64
	TotalFinalValue          float64
	TotalWeightDifferencePct float64
	SumPurchaseWeights       float64
	SumSaleWeights           float64
}

// ValidationError agrupa todas as mensagens de validação de uma chamada.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "entrada inválida: " + strings.Join(e.Messages, "; ")
}

// ValidateItem devolve as mensagens de validação da linha (vazio = válida).
// As mensagens são acumuladas, nunca curto-circuitadas.
func ValidateItem(in ItemInput) []string {
	var msgs []string

	if isBad(in.PurchaseWeight) || isBad(in.SaleWeight) || isBad(in.PurchaseValueWithICMS) ||
		isBad(in.SaleValueWithICMS) || isBad(in.ICMSPurchase) || isBad(in.ICMSSale) ||
		isBad(in.IPI) || isBad(in.OtherExpensesPerKg) {
		msgs = append(msgs, "valor numérico inválido")
	}

	if in.PurchaseWeight <= 0 {
		msgs = append(msgs, "peso de compra deve ser maior que zero")
	}
	if in.SaleWeight < 0 {
		msgs = append(msgs, "peso de venda não pode ser negativo")
	}
	if in.PurchaseValueWithICMS < 0 {
		msgs = append(msgs, "valor de compra não pode ser negativo")
	}
	if in.SaleValueWithICMS < 0 {
		msgs = append(msgs, "valor de venda não pode ser negativo")
	}
	if in.OtherExpensesPerKg < 0 {
		msgs = append(msgs, "outras despesas por kg não podem ser negativas")
	}

	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"icms_compra", in.ICMSPurchase},
		{"icms_venda", in.ICMSSale},
		{"ipi", in.IPI},
	} {
		if rate.value < 0 || rate.value >= 1 {
			msgs = append(msgs, fmt.Sprintf("alíquota %s deve ser fração em [0, 1), ex: 0.18 e não 18", rate.name))
		}
	}

	return msgs
}

func isBad(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// itemRaw guarda os derivados em precisão total; o arredondamento acontece
// só na borda, ao montar ItemComputed e Totals.
type itemRaw struct {
	effectiveSaleWeight          float64
	purchaseValueWithoutTaxes    float64
	weightCorrectedPurchaseValue float64
	saleValueWithoutTaxes        float64
	weightDifference             float64
	unitProfitability            float64
	totalProfitability           float64
	commissionRate               float64
	commissionValue              float64
	totalPurchase                float64
	totalSale                    float64
	totalSaleWithICMS            float64
	ipiValue                     float64
	totalWithIPI                 float64
}

func computeItemRaw(in ItemInput, p BudgetParams) itemRaw {
	saleWeight := in.SaleWeight
	if saleWeight <= 0 {
		saleWeight = in.PurchaseWeight
	}

	var sharedPerKg, freightPerKg float64
	if p.SumPurchaseWeights > 0 {
		sharedPerKg = p.SharedOtherExpenses / p.SumPurchaseWeights
		freightPerKg = p.TotalFreightValue / p.SumPurchaseWeights
	}

	purchaseNoTax := in.PurchaseValueWithICMS*(1-in.ICMSPurchase)*(1-PisCofins) +
		in.OtherExpensesPerKg + freightPerKg + sharedPerKg

	weightCorrected := purchaseNoTax
	if in.PurchaseWeight > 0 {
		weightCorrected = purchaseNoTax * (saleWeight / in.PurchaseWeight)
	}

	saleNoTax := in.SaleValueWithICMS * (1 - in.ICMSSale) * (1 - PisCofins)

	var unitProfit float64
	if weightCorrected > 0 {
		unitProfit = saleNoTax/weightCorrected - 1
	}

	totalPurchase := weightCorrected * saleWeight
	totalSale := saleNoTax * saleWeight

	var totalProfit float64
	if totalPurchase > 0 {
		totalProfit = totalSale/totalPurchase - 1
	}

	// A busca na tabela usa a margem quantizada; ruído de float não pode
	// virar uma fronteira de faixa.
	rate := CommissionRate(RoundPercent(unitProfit))

	totalSaleWithICMS := in.SaleValueWithICMS * saleWeight
	commissionValue := totalSaleWithICMS * rate
	ipiValue := totalSaleWithICMS * in.IPI

	return itemRaw{
		effectiveSaleWeight:          saleWeight,
		purchaseValueWithoutTaxes:    purchaseNoTax,
		weightCorrectedPurchaseValue: weightCorrected,
		saleValueWithoutTaxes:        saleNoTax,
		weightDifference:             saleWeight - in.PurchaseWeight,
		unitProfitability:            unitProfit,
		totalProfitability:           totalProfit,
		commissionRate:               rate,
		commissionValue:              commissionValue,
		totalPurchase:                totalPurchase,
		totalSale:                    totalSale,
		totalSaleWithICMS:            totalSaleWithICMS,
		ipiValue:                     ipiValue,
		totalWithIPI:                 totalSaleWithICMS + ipiValue,
	}
}

func roundItem(in ItemInput, raw itemRaw) ItemComputed {
	out := ItemComputed{ItemInput: in}
	out.SaleWeight = raw.effectiveSaleWeight

	out.PurchaseValueWithoutTaxes = RoundUnit(raw.purchaseValueWithoutTaxes)
	out.WeightCorrectedPurchaseValue = RoundUnit(raw.weightCorrectedPurchaseValue)
	out.SaleValueWithoutTaxes = RoundUnit(raw.saleValueWithoutTaxes)
	out.WeightDifference = RoundUnit(raw.weightDifference)
	out.WeightDifferenceDisplay = weightDifferenceDisplay(raw.weightDifference, in.PurchaseWeight)
	out.UnitSaleValue = RoundUnit(raw.saleValueWithoutTaxes)
	out.UnitProfitability = RoundPercent(raw.unitProfitability)
	out.TotalProfitability = RoundPercent(raw.totalProfitability)
	out.CommissionPercentage = raw.commissionRate
	out.CommissionValue = RoundCurrency(raw.commissionValue)
	out.TotalPurchase = RoundCurrency(raw.totalPurchase)
	out.TotalSale = RoundCurrency(raw.totalSale)
	out.TotalSaleWithICMS = RoundCurrency(raw.totalSaleWithICMS)
	out.IPIValue = RoundCurrency(raw.ipiValue)
	out.TotalWithIPI = RoundCurrency(raw.totalWithIPI)
	return out
}

// weightDifferenceDisplay monta o rótulo curto da diferença de peso.
// Ex: "+2.000 kg (+20.00%)", "-0.500 kg (-5.00%)", "sem diferença de peso".
func weightDifferenceDisplay(diff, purchaseWeight float64) string {
	rounded := Round(diff, 3)
	if rounded == 0 {
		return "sem diferença de peso"
	}
	var pct float64
	if purchaseWeight > 0 {
		pct = diff / purchaseWeight * 100
	}
	return fmt.Sprintf("%+.3f kg (%+.2f%%)", rounded, Round(pct, 2))
}

// ComputeItem calcula uma linha isolada com os parâmetros de orçamento dados.
func ComputeItem(in ItemInput, p BudgetParams) (ItemComputed, error) {
	if msgs := ValidateItem(in); len(msgs) > 0 {
		return ItemComputed{}, &ValidationError{Messages: msgs}
	}
	return roundItem(in, computeItemRaw(in, p)), nil
}

// ComputeBudget valida todas as linhas, calcula cada uma com os parâmetros de
// escopo do orçamento e agrega os totais. Determinístico: mesma entrada,
// mesma saída bit a bit. Falha de validação não produz resultado parcial.
func ComputeBudget(items []ItemInput, freightTotal, sharedOtherExpenses float64) ([]ItemComputed, Totals, error) {
	var msgs []string
	if isBad(freightTotal) || freightTotal < 0 {
		msgs = append(msgs, "valor total de frete não pode ser negativo")
	}
	if isBad(sharedOtherExpenses) || sharedOtherExpenses < 0 {
		msgs = append(msgs, "outras despesas totais não podem ser negativas")
	}
	for i, in := range items {
		for _, m := range ValidateItem(in) {
			msgs = append(msgs, fmt.Sprintf("item %d: %s", i+1, m))
		}
	}
	if len(msgs) > 0 {
		return nil, Totals{}, &ValidationError{Messages: msgs}
	}

	var sumPW, sumSW float64
	for _, in := range items {
		sumPW += in.PurchaseWeight
		sw := in.SaleWeight
		if sw <= 0 {
			sw = in.PurchaseWeight
		}
		sumSW += sw
	}

	params := BudgetParams{
		SharedOtherExpenses: sharedOtherExpenses,
		TotalFreightValue:   freightTotal,
		SumPurchaseWeights:  sumPW,
	}

	computed := make([]ItemComputed, 0, len(items))
	var rawPurchase, rawSale, rawSaleICMS, rawCommission, rawIPI float64
	for _, in := range items {
		raw := computeItemRaw(in, params)
		rawPurchase += raw.totalPurchase
		rawSale += raw.totalSale
		rawSaleICMS += raw.totalSaleWithICMS
		rawCommission += raw.commissionValue
		rawIPI += raw.ipiValue
		computed = append(computed, roundItem(in, raw))
	}

	totals := Totals{
		TotalPurchaseValue: RoundCurrency(rawPurchase),
		TotalSaleValue:     RoundCurrency(rawSale),
		TotalSaleWithICMS:  RoundCurrency(rawSaleICMS),
		TotalCommission:    RoundCurrency(rawCommission),
		TotalIPIValue:      RoundCurrency(rawIPI),
		TotalFinalValue:    RoundCurrency(rawSaleICMS + rawIPI),
		SumPurchaseWeights: sumPW,
		SumSaleWeights:     sumSW,
	}
	if rawPurchase > 0 {
		totals.Profitability = RoundPercent(rawSale/rawPurchase - 1)
		totals.Markup = totals.Profitability
	}
	if sumPW > 0 {
		totals.TotalWeightDifferencePct = Round((sumSW-sumPW)/sumPW*100, 2)
	}

	return computed, totals, nil
}
