package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/urbancost/parkcost/internal/model"
)

func sweepParams() model.CostParameters {
	return model.CostParameters{
		Spaces:                           100,
		Years:                            10,
		LandCostPerSqm:                   1000,
		ConstructionCostPerSpace:         5000,
		MaintenanceCostPerSpacePerYear:   500,
		InflationRatePct:                 2,
		DiscountRatePct:                  5,
		OccupancyRatePct:                 80,
		OpportunityMultiplier:            50,
		EnvironmentalCostPerSpacePerYear: 100,
	}
}

func TestRunSensitivitySweepShape(t *testing.T) {
	params := sweepParams()
	points, err := RunSensitivity(nil, params, "landCostPerSqm")
	if err != nil {
		t.Fatalf("RunSensitivity() error = %v", err)
	}

	// 10% through 50% inclusive in 5% steps.
	if len(points) != 9 {
		t.Fatalf("expected 9 sweep points, got %d", len(points))
	}
	if math.Abs(points[0].Value-1100) > 1e-9 {
		t.Errorf("first perturbed value = %v, expected 1100", points[0].Value)
	}
	if math.Abs(points[len(points)-1].Value-1500) > 1e-9 {
		t.Errorf("last perturbed value = %v, expected 1500", points[len(points)-1].Value)
	}

	// Each point matches a full recomputation at the perturbed value.
	for _, point := range points {
		check := params
		check.LandCostPerSqm = point.Value
		breakdown, err := model.ComputeBreakdown(check)
		if err != nil {
			t.Fatalf("ComputeBreakdown() error = %v", err)
		}
		if math.Abs(point.TotalCost-breakdown.TotalCost) > 1e-6 {
			t.Errorf("TotalCost at %v = %v, expected %v", point.Value, point.TotalCost, breakdown.TotalCost)
		}
	}
}

func TestRunSensitivityDoesNotMutateParams(t *testing.T) {
	params := sweepParams()
	original := params

	for _, name := range SweepParameterNames() {
		if _, err := RunSensitivity(nil, params, name); err != nil {
			t.Fatalf("RunSensitivity(%q) error = %v", name, err)
		}
		if params != original {
			t.Fatalf("RunSensitivity(%q) mutated caller parameters: %+v", name, params)
		}
	}
}

func TestRunSensitivityOccupancyIsFlat(t *testing.T) {
	// Occupancy is carried but does not enter any total, so its sweep is a
	// flat line.
	points, err := RunSensitivity(nil, sweepParams(), "occupancyRatePct")
	if err != nil {
		t.Fatalf("RunSensitivity() error = %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].TotalCost != points[0].TotalCost {
			t.Errorf("occupancy sweep changed total: %v vs %v", points[i].TotalCost, points[0].TotalCost)
		}
	}
}

func TestRunSensitivityMonotoneForCostInputs(t *testing.T) {
	for _, name := range []string{"landCostPerSqm", "constructionCostPerSpace", "maintenanceCostPerSpacePerYear", "inflationRatePct"} {
		points, err := RunSensitivity(nil, sweepParams(), name)
		if err != nil {
			t.Fatalf("RunSensitivity(%q) error = %v", name, err)
		}
		for i := 1; i < len(points); i++ {
			if points[i].TotalCost < points[i-1].TotalCost {
				t.Errorf("%s sweep is not non-decreasing at step %d: %v < %v", name, i, points[i].TotalCost, points[i-1].TotalCost)
			}
		}
	}
}

func TestRunSensitivityUnknownParameter(t *testing.T) {
	if _, err := RunSensitivity(nil, sweepParams(), "parkingFee"); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("RunSensitivity() error = %v, expected ErrInvalidParameter", err)
	}
}

func TestRunSensitivityInvalidBaseParams(t *testing.T) {
	params := sweepParams()
	params.Spaces = 0
	if _, err := RunSensitivity(nil, params, "landCostPerSqm"); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("RunSensitivity() error = %v, expected ErrInvalidParameter", err)
	}
}

func TestSweepParameterNamesAreRegistered(t *testing.T) {
	names := SweepParameterNames()
	if len(names) != len(parameterRegistry) {
		t.Fatalf("presentation order covers %d names, registry has %d", len(names), len(parameterRegistry))
	}
	for _, name := range names {
		if _, ok := parameterRegistry[name]; !ok {
			t.Errorf("name %q missing from registry", name)
		}
	}
}
