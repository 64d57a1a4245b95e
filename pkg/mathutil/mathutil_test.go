package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGrowthFactor(t *testing.T) {
	tests := []struct {
		name     string
		ratePct  float64
		periods  int
		expected float64
	}{
		{"Zero rate", 0.0, 10, 1.0},
		{"Single period", 5.0, 1, 1.05},
		{"Compound two periods", 10.0, 2, 1.21},
		{"Zero periods", 7.5, 0, 1.0},
		{"Inflation-like rate", 2.0, 10, math.Pow(1.02, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GrowthFactor(tt.ratePct, tt.periods)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("GrowthFactor(%v, %v) = %v, expected %v", tt.ratePct, tt.periods, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Half", 200.0, 50.0, 100.0},
		{"Full", 80.0, 100.0, 80.0},
		{"Zero percentage", 1234.0, 0.0, 0.0},
		{"Over one hundred", 100.0, 150.0, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.004, 1.0, 0.005) {
		t.Error("expected 1.004 to be within 0.005 of 1.0")
	}
	if WithinTolerance(1.01, 1.0, 0.005) {
		t.Error("expected 1.01 to be outside 0.005 of 1.0")
	}
}

func TestMinMax(t *testing.T) {
	if Min(1.0, 2.0) != 1.0 || Min(2.0, 1.0) != 1.0 {
		t.Error("Min returned wrong value")
	}
	if Max(1.0, 2.0) != 2.0 || Max(2.0, 1.0) != 2.0 {
		t.Error("Max returned wrong value")
	}
}
