package output

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urbancost/parkcost/internal/analysis"
	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/internal/report"
	"github.com/urbancost/parkcost/internal/scenario"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read pipe: %v", err)
	}
	return string(data)
}

func sampleReport(t *testing.T) report.Report {
	t.Helper()
	params := model.CostParameters{
		Spaces: 100, Years: 10, LandCostPerSqm: 1000, ConstructionCostPerSpace: 5000,
		MaintenanceCostPerSpacePerYear: 500, InflationRatePct: 2, DiscountRatePct: 5,
		OccupancyRatePct: 80, OpportunityMultiplier: 50, EnvironmentalCostPerSpacePerYear: 100,
	}
	breakdown, err := model.ComputeBreakdown(params)
	if err != nil {
		t.Fatalf("ComputeBreakdown() error = %v", err)
	}

	mean := 1000000.0
	return report.Report{
		Scenarios: []report.ScenarioResult{
			{
				Name:                 "Base Scenario",
				ParkingType:          "Surface",
				Parameters:           params,
				Breakdown:            breakdown,
				SensitivityParameter: "landCostPerSqm",
				Sensitivity: []analysis.SensitivityPoint{
					{Value: 1100, TotalCost: 1234567.89},
				},
				Simulation: &analysis.Summary{Count: 1, Mean: &mean, Median: &mean},
			},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(sampleReport(t))
	})

	for _, fragment := range []string{
		"Results for scenario Base Scenario (Surface)",
		"Total Land Cost",
		"$1,500,000.00",
		"Total Opportunity Cost",
		"$75,000,000.00",
		"Sensitivity of total cost to landCostPerSqm",
		"$1,234,567.89",
		"Monte Carlo simulation (1 runs)",
		"undefined for this sample size",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("pretty output missing %q\noutput:\n%s", fragment, out)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	store := scenario.NewStore()
	params := model.CostParameters{Spaces: 1, Years: 1, LandCostPerSqm: 10}
	breakdown, err := model.ComputeBreakdown(params)
	if err != nil {
		t.Fatalf("ComputeBreakdown() error = %v", err)
	}
	store.Save("Only", "Surface", breakdown, params)

	out := captureStdout(t, func() {
		if err := CsvFormat(store); err != nil {
			t.Errorf("CsvFormat() error = %v", err)
		}
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Only,Surface,") {
		t.Errorf("unexpected data line: %q", lines[1])
	}
}
