// Package output provides utilities for formatting and displaying report
// results.
package output

import (
	"fmt"

	"github.com/urbancost/parkcost/internal/report"
	"github.com/urbancost/parkcost/internal/scenario"
	"github.com/urbancost/parkcost/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(rep report.Report) {
	p := message.NewPrinter(language.English)

	for _, sc := range rep.Scenarios {
		fmt.Printf("--- Results for scenario %s (%s) ---\n", sc.Name, sc.ParkingType)
		_, _ = p.Printf("Total Land Cost:          $%.2f\n", sc.Breakdown.TotalLandCost)
		_, _ = p.Printf("Total Construction Cost:  $%.2f\n", sc.Breakdown.TotalConstructionCost)
		_, _ = p.Printf("NPV of Maintenance Costs: $%.2f\n", sc.Breakdown.NPVMaintenanceCost)
		_, _ = p.Printf("Total Opportunity Cost:   $%.2f\n", sc.Breakdown.TotalOpportunityCost)
		_, _ = p.Printf("Total Environmental Cost: $%.2f\n", sc.Breakdown.TotalEnvironmentalCost)
		_, _ = p.Printf("Total Cost (NPV):         $%.2f\n", sc.Breakdown.TotalCost)
		_, _ = p.Printf("Cost per Parking Space:   $%.2f\n", sc.Breakdown.CostPerSpace)
		_, _ = p.Printf("Cost per Year:            $%.2f\n", sc.Breakdown.CostPerYear)

		if len(sc.Sensitivity) > 0 {
			fmt.Printf("\nSensitivity of total cost to %s:\n", sc.SensitivityParameter)
			fmt.Printf("Value         | Total Cost\n")
			fmt.Printf("____________  | __________\n")
			for _, point := range sc.Sensitivity {
				fmt.Printf("%12.2f  | %s\n", point.Value, format.Currency(point.TotalCost))
			}
		}

		if sim := sc.Simulation; sim != nil {
			fmt.Printf("\nMonte Carlo simulation (%d runs):\n", sim.Count)
			if sim.Mean != nil {
				_, _ = p.Printf("Mean Total Cost:     $%.2f\n", *sim.Mean)
			}
			if sim.Median != nil {
				_, _ = p.Printf("Median Total Cost:   $%.2f\n", *sim.Median)
			}
			if sim.StdDev != nil {
				_, _ = p.Printf("Standard Deviation:  $%.2f\n", *sim.StdDev)
			}
			if sim.CI95Lower != nil && sim.CI95Upper != nil {
				_, _ = p.Printf("95%% Confidence Interval: ($%.2f, $%.2f)\n", *sim.CI95Lower, *sim.CI95Upper)
			} else {
				fmt.Printf("95%% Confidence Interval: undefined for this sample size\n")
			}
		}
		fmt.Printf("\n")
	}

	if wp := rep.Workplace; wp != nil {
		fmt.Printf("--- Workplace parking ---\n")
		_, _ = p.Printf("Construction Cost:       $%.2f\n", wp.Breakdown.ConstructionCost)
		_, _ = p.Printf("Land Cost:               $%.2f\n", wp.Breakdown.LandCost)
		_, _ = p.Printf("Annual Maintenance Cost: $%.2f\n", wp.Breakdown.AnnualMaintenanceCost)
		_, _ = p.Printf("Annual Opportunity Cost: $%.2f\n", wp.Breakdown.AnnualOpportunityCost)
		_, _ = p.Printf("Total Annual Cost:       $%.2f\n", wp.Breakdown.TotalAnnualCost)
		_, _ = p.Printf("Cost per Space per Year: $%.2f\n", wp.Breakdown.CostPerSpacePerYear)

		if c := wp.Comparison; c != nil {
			fmt.Printf("\nAlternatives:\n")
			_, _ = p.Printf("Annual transit subsidy:         $%.2f\n", c.AnnualTransitSubsidy)
			_, _ = p.Printf("Remote work reduced need:       %.0f spaces ($%.2f/yr)\n", c.RemoteReducedSpaces, c.RemoteReducedCost)
			_, _ = p.Printf("Carpool spaces saved:           %.1f\n", c.CarpoolSpacesSaved)
			_, _ = p.Printf("Carpool incentive cost:         $%.2f\n", c.CarpoolIncentiveCost)
			_, _ = p.Printf("Carpool net annual savings:     $%.2f\n", c.CarpoolNetSavings)
		}
		fmt.Printf("\n")
	}

	if st := rep.Street; st != nil {
		fmt.Printf("--- Street parking ---\n")
		fmt.Printf("Potential street parking spaces: %d\n", st.Spaces)
		_, _ = p.Printf("Street parking area: %.2f sqm\n", st.ParkingAreaSqm)
		if st.AlternativeAreaSqm > 0 {
			_, _ = p.Printf("%s area: %.2f sqm\n", st.AlternativeUse, st.AlternativeAreaSqm)
		}
		if st.AlternativeLengthM > 0 {
			_, _ = p.Printf("%s length: %.0f m\n", st.AlternativeUse, st.AlternativeLengthM)
		}
		fmt.Printf("\n")
	}

	if d := rep.Demand; d != nil {
		fmt.Printf("--- Parking demand ---\n")
		fmt.Printf("Estimated parking demand: %d spaces\n", d.EstimatedDemand)
		fmt.Printf("Change from fee policy: %s\n", format.Percent(d.DemandChange*100))
		fmt.Printf("New estimated demand: %d spaces\n", d.NewDemand)
		fmt.Printf("\n")
	}
}

// CsvFormat outputs the saved scenarios in comma-separated value format.
func CsvFormat(store *scenario.Store) error {
	data, err := store.ExportCSV()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
