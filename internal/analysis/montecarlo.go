package analysis

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/pkg/constants"
	"github.com/urbancost/parkcost/pkg/mathutil"
	"github.com/urbancost/parkcost/pkg/stats"
	"go.uber.org/zap"
)

// Simulator runs Monte Carlo simulations of the cost model. The random
// source is injectable so tests can fix a seed; NewSimulator with a nil rng
// installs a time-seeded source.
type Simulator struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// NewSimulator constructs a Simulator. Either argument may be nil.
func NewSimulator(logger *zap.Logger, rng *rand.Rand) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{logger: logger, rng: rng}
}

// Run draws count independent samples of total cost. Each iteration samples
// land, construction, and maintenance costs from normal distributions
// centered on their base values (sigma 10%, 15%, and 20% of base
// respectively), clamps them at zero, and recomputes the total through the
// same period-by-period breakdown as the base scenario. Environmental and
// opportunity inputs stay at their base values, though opportunity cost
// still tracks the sampled land cost. count is bounded to keep a single run
// from stalling the caller.
func (s *Simulator) Run(params model.CostParameters, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: simulation count must be non-negative, got %d", model.ErrInvalidParameter, count)
	}
	if count > constants.MaxSimulationCount {
		return nil, fmt.Errorf("%w: simulation count %d exceeds limit of %d", model.ErrInvalidParameter, count, constants.MaxSimulationCount)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	samples := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		sampled := params
		sampled.LandCostPerSqm = s.sampleNormal(params.LandCostPerSqm, constants.LandCostSigmaFraction)
		sampled.ConstructionCostPerSpace = s.sampleNormal(params.ConstructionCostPerSpace, constants.ConstructionCostSigmaFraction)
		sampled.MaintenanceCostPerSpacePerYear = s.sampleNormal(params.MaintenanceCostPerSpacePerYear, constants.MaintenanceCostSigmaFraction)

		breakdown, err := model.ComputeBreakdown(sampled)
		if err != nil {
			return nil, err
		}
		samples = append(samples, breakdown.TotalCost)
	}

	s.logger.Debug("monte carlo run complete",
		zap.String("op", "analysis.Simulator.Run"),
		zap.Int("count", count),
	)

	return samples, nil
}

// sampleNormal draws from N(mean, (mean*sigmaFraction)^2), clamped at zero.
func (s *Simulator) sampleNormal(mean, sigmaFraction float64) float64 {
	return mathutil.Max(0, mean+s.rng.NormFloat64()*mean*sigmaFraction)
}

// Summary holds the statistics derived from a simulation run. Pointer fields
// are nil when the statistic is undefined for the sample size: everything
// for an empty sample, the standard deviation and confidence interval for a
// singleton.
type Summary struct {
	Count     int      `json:"count"`
	Mean      *float64 `json:"mean,omitempty"`
	Median    *float64 `json:"median,omitempty"`
	StdDev    *float64 `json:"stdDev,omitempty"`
	CI95Lower *float64 `json:"ci95Lower,omitempty"`
	CI95Upper *float64 `json:"ci95Upper,omitempty"`
}

// Summarize computes mean, median, sample standard deviation, and the 95%
// t-distribution confidence interval (degrees of freedom = count-1) for a
// simulation result. Degenerate samples yield a defined Summary rather than
// an error.
func Summarize(samples []float64) Summary {
	summary := Summary{Count: len(samples)}
	if len(samples) == 0 {
		return summary
	}

	mean := stats.Mean(samples)
	median := stats.Median(samples)
	summary.Mean = &mean
	summary.Median = &median

	if len(samples) < 2 {
		return summary
	}

	stdDev := stats.SampleStdDev(samples)
	summary.StdDev = &stdDev

	if lower, upper, ok := stats.ConfidenceInterval95(samples); ok {
		summary.CI95Lower = &lower
		summary.CI95Upper = &upper
	}

	return summary
}
