package calc

import "testing"

func TestCommissionRateBoundaries(t *testing.T) {
	tests := []struct {
		profitability float64
		expect        float64
	}{
		{-0.50, 0},
		{0, 0},
		{0.199, 0},
		{0.20, 0.010},
		{0.299, 0.010},
		{0.30, 0.015},
		{0.399, 0.015},
		{0.40, 0.025},
		{0.499, 0.025},
		{0.50, 0.030},
		{0.599, 0.030},
		{0.60, 0.040},
		{0.799, 0.040},
		{0.80, 0.050},
		{2.50, 0.050},
	}

	for _, tt := range tests {
		if got := CommissionRate(tt.profitability); got != tt.expect {
			t.Errorf("CommissionRate(%v) = %v, want %v", tt.profitability, got, tt.expect)
		}
	}
}

func TestCommissionRateMonotonic(t *testing.T) {
	prev := 0.0
	for p := -1.0; p <= 1.5; p += 0.001 {
		rate := CommissionRate(p)
		if rate < prev {
			t.Fatalf("alíquota caiu de %v para %v em lucratividade %v", prev, rate, p)
		}
		prev = rate
	}
}
