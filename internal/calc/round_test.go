package calc

import (
	"math"
	"testing"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		places int32
		expect float64
	}{
		{"metade sobe", 2.675, 2, 2.68},
		{"metade negativa desce", -2.675, 2, -2.68},
		{"meio centavo", 0.005, 2, 0.01},
		{"abaixo da metade", 2.674, 2, 2.67},
		{"acima da metade", 2.676, 2, 2.68},
		{"seis casas", 74.4149996, 6, 74.415},
		{"inteiro", 10, 2, 10},
		{"zero", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.x, tt.places)
			if got != tt.expect {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.expect)
			}
		})
	}
}

func TestRoundCoercesNonNumericToZero(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Round(x, 2); got != 0 {
			t.Errorf("Round(%v, 2) = %v, want 0", x, got)
		}
		if got := RoundPercentDisplay(x); got != 0 {
			t.Errorf("RoundPercentDisplay(%v) = %v, want 0", x, got)
		}
	}
}

func TestRoundCurrency(t *testing.T) {
	if got := RoundCurrency(744.14999999999998); got != 744.15 {
		t.Errorf("RoundCurrency = %v, want 744.15", got)
	}
	if got := RoundCurrency(1071.5760000000002); got != 1071.58 {
		t.Errorf("RoundCurrency = %v, want 1071.58", got)
	}
}

func TestRoundPercentDisplay(t *testing.T) {
	tests := []struct {
		fraction float64
		expect   float64
	}{
		{0.1234, 12.34},
		{0.2, 20},
		{0.015, 1.5},
		{0.123456, 12.35},
		{-0.05, -5},
	}

	for _, tt := range tests {
		if got := RoundPercentDisplay(tt.fraction); got != tt.expect {
			t.Errorf("RoundPercentDisplay(%v) = %v, want %v", tt.fraction, got, tt.expect)
		}
	}
}
