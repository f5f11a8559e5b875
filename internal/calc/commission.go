package calc

// Tabela de comissão por faixa de lucratividade unitária (frações).
// Única fonte de verdade das alíquotas; nenhum outro componente codifica taxas.
type commissionTier struct {
	minProfitability float64
	rate             float64
}

var commissionTable = []commissionTier{
	{0.80, 0.050},
	{0.60, 0.040},
	{0.50, 0.030},
	{0.40, 0.025},
	{0.30, 0.015},
	{0.20, 0.010},
}

// CommissionRate devolve a alíquota de comissão para uma lucratividade
// unitária (fração). Abaixo de 0.20 (inclusive negativa) a comissão é zero.
func CommissionRate(unitProfitability float64) float64 {
	for _, tier := range commissionTable {
		if unitProfitability >= tier.minProfitability {
			return tier.rate
		}
	}
	return 0
}
