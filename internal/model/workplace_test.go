package model

import (
	"errors"
	"math"
	"testing"
)

func TestComputeWorkplaceBreakdown(t *testing.T) {
	tests := []struct {
		name               string
		params             WorkplaceParameters
		expectConstruction float64
		expectLand         float64
		expectArea         float64
	}{
		{
			name:               "Surface lot urban center",
			params:             WorkplaceParameters{Spaces: 100, ParkingType: SurfaceLot, Location: UrbanCenter},
			expectConstruction: 100 * 5000,
			expectLand:         100 * 30 * 1000,
			expectArea:         3000,
		},
		{
			name:               "Structured suburban",
			params:             WorkplaceParameters{Spaces: 50, ParkingType: Structured, Location: Suburban},
			expectConstruction: 50 * 15000,
			expectLand:         50 * 15 * 500,
			expectArea:         750,
		},
		{
			name:               "Underground rural",
			params:             WorkplaceParameters{Spaces: 10, ParkingType: Underground, Location: Rural},
			expectConstruction: 10 * 20000,
			expectLand:         10 * 15 * 200,
			expectArea:         150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := ComputeWorkplaceBreakdown(tt.params)
			if err != nil {
				t.Fatalf("ComputeWorkplaceBreakdown() error = %v", err)
			}
			if breakdown.ConstructionCost != tt.expectConstruction {
				t.Errorf("ConstructionCost = %v, expected %v", breakdown.ConstructionCost, tt.expectConstruction)
			}
			if breakdown.LandCost != tt.expectLand {
				t.Errorf("LandCost = %v, expected %v", breakdown.LandCost, tt.expectLand)
			}
			if breakdown.LandAreaSqm != tt.expectArea {
				t.Errorf("LandAreaSqm = %v, expected %v", breakdown.LandAreaSqm, tt.expectArea)
			}

			expectedMaintenance := tt.params.Spaces * 500
			if breakdown.AnnualMaintenanceCost != expectedMaintenance {
				t.Errorf("AnnualMaintenanceCost = %v, expected %v", breakdown.AnnualMaintenanceCost, expectedMaintenance)
			}

			expectedTotal := (breakdown.ConstructionCost+breakdown.LandCost)*0.05 +
				breakdown.AnnualMaintenanceCost + breakdown.AnnualOpportunityCost
			if math.Abs(breakdown.TotalAnnualCost-expectedTotal) > 1e-9 {
				t.Errorf("TotalAnnualCost = %v, expected %v", breakdown.TotalAnnualCost, expectedTotal)
			}
			if math.Abs(breakdown.CostPerSpacePerMonth*12-breakdown.CostPerSpacePerYear) > 1e-9 {
				t.Errorf("CostPerSpacePerMonth = %v inconsistent with CostPerSpacePerYear = %v", breakdown.CostPerSpacePerMonth, breakdown.CostPerSpacePerYear)
			}
		})
	}
}

func TestComputeWorkplaceBreakdownUnknownTypes(t *testing.T) {
	tests := []struct {
		name   string
		params WorkplaceParameters
	}{
		{"Unknown parking type", WorkplaceParameters{Spaces: 10, ParkingType: "Rooftop", Location: UrbanCenter}},
		{"Unknown location", WorkplaceParameters{Spaces: 10, ParkingType: SurfaceLot, Location: "Offshore"}},
		{"Zero spaces", WorkplaceParameters{Spaces: 0, ParkingType: SurfaceLot, Location: UrbanCenter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeWorkplaceBreakdown(tt.params); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ComputeWorkplaceBreakdown() error = %v, expected ErrInvalidParameter", err)
			}
		})
	}
}

func TestCompareAlternatives(t *testing.T) {
	wp := WorkplaceParameters{Spaces: 100, ParkingType: SurfaceLot, Location: UrbanCenter}
	breakdown, err := ComputeWorkplaceBreakdown(wp)
	if err != nil {
		t.Fatalf("ComputeWorkplaceBreakdown() error = %v", err)
	}

	alt := AlternativeParameters{
		MonthlyTransitPassCost:  100,
		RemoteDaysPerWeek:       2,
		CarpoolRatePct:          20,
		MonthlyCarpoolIncentive: 50,
	}

	comparison, err := CompareAlternatives(wp, alt, breakdown)
	if err != nil {
		t.Fatalf("CompareAlternatives() error = %v", err)
	}

	if comparison.AnnualTransitSubsidy != 100*12*100 {
		t.Errorf("AnnualTransitSubsidy = %v, expected 120000", comparison.AnnualTransitSubsidy)
	}
	if math.Abs(comparison.RemoteReducedSpaces-60) > 1e-9 {
		t.Errorf("RemoteReducedSpaces = %v, expected 60", comparison.RemoteReducedSpaces)
	}
	if math.Abs(comparison.RemoteReducedCost-breakdown.TotalAnnualCost*0.6) > 1e-9 {
		t.Errorf("RemoteReducedCost = %v, expected %v", comparison.RemoteReducedCost, breakdown.TotalAnnualCost*0.6)
	}

	// 20 carpoolers each free half a space.
	if math.Abs(comparison.CarpoolSpacesSaved-10) > 1e-9 {
		t.Errorf("CarpoolSpacesSaved = %v, expected 10", comparison.CarpoolSpacesSaved)
	}
	if math.Abs(comparison.CarpoolIncentiveCost-50*12*20) > 1e-9 {
		t.Errorf("CarpoolIncentiveCost = %v, expected 12000", comparison.CarpoolIncentiveCost)
	}
	expectedSavings := breakdown.TotalAnnualCost*(10.0/100) - 12000
	if math.Abs(comparison.CarpoolNetSavings-expectedSavings) > 1e-9 {
		t.Errorf("CarpoolNetSavings = %v, expected %v", comparison.CarpoolNetSavings, expectedSavings)
	}
}

func TestCompareAlternativesValidation(t *testing.T) {
	wp := WorkplaceParameters{Spaces: 100, ParkingType: SurfaceLot, Location: UrbanCenter}
	breakdown, err := ComputeWorkplaceBreakdown(wp)
	if err != nil {
		t.Fatalf("ComputeWorkplaceBreakdown() error = %v", err)
	}

	tests := []struct {
		name string
		alt  AlternativeParameters
	}{
		{"Negative transit pass", AlternativeParameters{MonthlyTransitPassCost: -1}},
		{"Remote days above workweek", AlternativeParameters{RemoteDaysPerWeek: 6}},
		{"Carpool rate above 100", AlternativeParameters{CarpoolRatePct: 120}},
		{"Negative incentive", AlternativeParameters{MonthlyCarpoolIncentive: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompareAlternatives(wp, tt.alt, breakdown); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("CompareAlternatives() error = %v, expected ErrInvalidParameter", err)
			}
		})
	}
}
