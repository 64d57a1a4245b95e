// Package report runs every analysis requested by a configuration and
// collects the results for the presentation layer.
package report

import (
	"fmt"
	"math/rand"

	"github.com/urbancost/parkcost/internal/analysis"
	"github.com/urbancost/parkcost/internal/config"
	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/internal/scenario"
	"go.uber.org/zap"
)

// ScenarioResult holds everything computed for one configured scenario.
type ScenarioResult struct {
	Name                 string                      `json:"name"`
	ParkingType          string                      `json:"parkingType"`
	Parameters           model.CostParameters        `json:"parameters"`
	Breakdown            model.CostBreakdown         `json:"breakdown"`
	SensitivityParameter string                      `json:"sensitivityParameter,omitempty"`
	Sensitivity          []analysis.SensitivityPoint `json:"sensitivity,omitempty"`
	Simulation           *analysis.Summary           `json:"simulation,omitempty"`
}

// WorkplaceResult pairs the workplace breakdown with its optional
// alternatives comparison.
type WorkplaceResult struct {
	Breakdown  model.WorkplaceBreakdown     `json:"breakdown"`
	Comparison *model.AlternativeComparison `json:"comparison,omitempty"`
}

// Report is the full output of one configuration run.
type Report struct {
	Scenarios []ScenarioResult      `json:"scenarios"`
	Workplace *WorkplaceResult      `json:"workplace,omitempty"`
	Street    *model.StreetAnalysis `json:"street,omitempty"`
	Demand    *model.DemandEstimate `json:"demand,omitempty"`
}

// Generate computes breakdowns and requested analyses for every configured
// scenario, appending scenarios flagged for saving to store. A nil store
// disables saving.
func Generate(logger *zap.Logger, conf config.Configuration, store *scenario.Store) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var report Report
	for _, sc := range conf.Scenarios {
		result, err := runScenario(logger, sc)
		if err != nil {
			return report, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		report.Scenarios = append(report.Scenarios, result)

		if sc.Save && store != nil {
			store.Save(sc.Name, sc.ParkingType, result.Breakdown, sc.Parameters)
			logger.Debug("scenario saved",
				zap.String("op", "report.Generate"),
				zap.String("scenario", sc.Name),
			)
		}
	}

	if conf.Workplace != nil {
		workplace, err := runWorkplace(*conf.Workplace)
		if err != nil {
			return report, err
		}
		report.Workplace = workplace
	}

	if conf.Urban != nil {
		if conf.Urban.Street != nil {
			street, err := model.AnalyzeStreet(*conf.Urban.Street, conf.Urban.AlternativeUse)
			if err != nil {
				return report, fmt.Errorf("street analysis: %w", err)
			}
			report.Street = &street
		}
		if conf.Urban.Demand != nil {
			demand, err := model.EstimateDemand(*conf.Urban.Demand)
			if err != nil {
				return report, fmt.Errorf("demand estimate: %w", err)
			}
			report.Demand = &demand
		}
	}

	return report, nil
}

func runScenario(logger *zap.Logger, sc config.ScenarioConfig) (ScenarioResult, error) {
	breakdown, err := model.ComputeBreakdown(sc.Parameters)
	if err != nil {
		return ScenarioResult{}, err
	}

	result := ScenarioResult{
		Name:        sc.Name,
		ParkingType: sc.ParkingType,
		Parameters:  sc.Parameters,
		Breakdown:   breakdown,
	}

	if sc.Sensitivity != nil {
		points, err := analysis.RunSensitivity(logger, sc.Parameters, sc.Sensitivity.Parameter)
		if err != nil {
			return ScenarioResult{}, err
		}
		result.SensitivityParameter = sc.Sensitivity.Parameter
		result.Sensitivity = points
	}

	if sc.MonteCarlo != nil {
		var rng *rand.Rand
		if sc.MonteCarlo.Seed != nil {
			rng = rand.New(rand.NewSource(*sc.MonteCarlo.Seed))
		}
		samples, err := analysis.NewSimulator(logger, rng).Run(sc.Parameters, sc.MonteCarlo.Count)
		if err != nil {
			return ScenarioResult{}, err
		}
		summary := analysis.Summarize(samples)
		result.Simulation = &summary
	}

	return result, nil
}

func runWorkplace(wc config.WorkplaceConfig) (*WorkplaceResult, error) {
	breakdown, err := model.ComputeWorkplaceBreakdown(wc.Parameters)
	if err != nil {
		return nil, fmt.Errorf("workplace breakdown: %w", err)
	}

	result := &WorkplaceResult{Breakdown: breakdown}
	if wc.Alternatives != nil {
		comparison, err := model.CompareAlternatives(wc.Parameters, *wc.Alternatives, breakdown)
		if err != nil {
			return nil, fmt.Errorf("workplace alternatives: %w", err)
		}
		result.Comparison = &comparison
	}

	return result, nil
}
