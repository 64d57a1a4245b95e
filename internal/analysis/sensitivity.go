// Package analysis implements the sensitivity sweep and Monte Carlo
// simulation over the cost model.
package analysis

import (
	"fmt"

	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/pkg/constants"
	"github.com/urbancost/parkcost/pkg/mathutil"
	"go.uber.org/zap"
)

// parameterAccessor pairs a getter and setter for one sweepable field of
// CostParameters. Parameters are resolved through this registry so unknown
// names fail fast instead of being looked up dynamically.
type parameterAccessor struct {
	get func(*model.CostParameters) float64
	set func(*model.CostParameters, float64)
}

var parameterRegistry = map[string]parameterAccessor{
	"landCostPerSqm": {
		get: func(p *model.CostParameters) float64 { return p.LandCostPerSqm },
		set: func(p *model.CostParameters, v float64) { p.LandCostPerSqm = v },
	},
	"constructionCostPerSpace": {
		get: func(p *model.CostParameters) float64 { return p.ConstructionCostPerSpace },
		set: func(p *model.CostParameters, v float64) { p.ConstructionCostPerSpace = v },
	},
	"maintenanceCostPerSpacePerYear": {
		get: func(p *model.CostParameters) float64 { return p.MaintenanceCostPerSpacePerYear },
		set: func(p *model.CostParameters, v float64) { p.MaintenanceCostPerSpacePerYear = v },
	},
	"inflationRatePct": {
		get: func(p *model.CostParameters) float64 { return p.InflationRatePct },
		set: func(p *model.CostParameters, v float64) { p.InflationRatePct = v },
	},
	"discountRatePct": {
		get: func(p *model.CostParameters) float64 { return p.DiscountRatePct },
		set: func(p *model.CostParameters, v float64) { p.DiscountRatePct = v },
	},
	"occupancyRatePct": {
		get: func(p *model.CostParameters) float64 { return p.OccupancyRatePct },
		set: func(p *model.CostParameters, v float64) { p.OccupancyRatePct = v },
	},
}

// sweepParameterNames fixes the order parameters are reported in.
var sweepParameterNames = []string{
	"landCostPerSqm",
	"constructionCostPerSpace",
	"maintenanceCostPerSpacePerYear",
	"inflationRatePct",
	"discountRatePct",
	"occupancyRatePct",
}

// SweepParameterNames returns the parameter keys accepted by RunSensitivity,
// in presentation order.
func SweepParameterNames() []string {
	return append([]string(nil), sweepParameterNames...)
}

// SensitivityPoint is one entry of a sweep: the perturbed parameter value and
// the resulting total cost.
type SensitivityPoint struct {
	Value     float64 `json:"value"`
	TotalCost float64 `json:"totalCost"`
}

// RunSensitivity perturbs a single named parameter from +10% through +50% in
// 5% steps, recomputing the full breakdown at each step with all other
// parameters held at their base values. The sweep operates on a copy, so the
// caller's parameters are never mutated. An unknown parameter name is an
// input validation error.
func RunSensitivity(logger *zap.Logger, params model.CostParameters, parameter string) ([]SensitivityPoint, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	accessor, ok := parameterRegistry[parameter]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sensitivity parameter %q", model.ErrInvalidParameter, parameter)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	base := accessor.get(&params)
	var points []SensitivityPoint
	for pct := constants.SensitivityRangeStartPct; pct <= constants.SensitivityRangeEndPct; pct += constants.SensitivityStepPct {
		perturbed := params
		value := base + mathutil.ApplyPercentage(base, float64(pct))
		accessor.set(&perturbed, value)

		breakdown, err := model.ComputeBreakdown(perturbed)
		if err != nil {
			return nil, err
		}
		points = append(points, SensitivityPoint{Value: value, TotalCost: breakdown.TotalCost})
	}

	logger.Debug("sensitivity sweep complete",
		zap.String("op", "analysis.RunSensitivity"),
		zap.String("parameter", parameter),
		zap.Int("points", len(points)),
	)

	return points, nil
}
