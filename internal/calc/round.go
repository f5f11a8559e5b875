// Package calc implementa o kernel de cálculo de orçamentos: destravamento
// de impostos, rateio de frete e despesas, lucratividade e comissão.
// O pacote é puro: sem I/O, sem relógio, sem log.
package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round quantiza x em `places` casas decimais com arredondamento
// half-away-from-zero. NaN e ±Inf viram 0.
func Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// RoundCurrency: valores monetários, 2 casas.
func RoundCurrency(x float64) float64 {
	return Round(x, 2)
}

// RoundUnit: intermediários por kg, 6 casas.
func RoundUnit(x float64) float64 {
	return Round(x, 6)
}

// RoundPercent: frações percentuais internas (0.1234), 6 casas.
func RoundPercent(x float64) float64 {
	return Round(x, 6)
}

// RoundPercentDisplay: converte fração em percentual de exibição (×100, 2 casas).
func RoundPercentDisplay(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return decimal.NewFromFloat(x).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
