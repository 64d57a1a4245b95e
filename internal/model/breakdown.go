package model

import (
	"github.com/urbancost/parkcost/pkg/constants"
	"github.com/urbancost/parkcost/pkg/mathutil"
)

// CostBreakdown is the derived cost summary for one parameter set. It is
// never mutated after creation.
type CostBreakdown struct {
	TotalLandCost          float64 `json:"totalLandCost"`
	TotalConstructionCost  float64 `json:"totalConstructionCost"`
	NPVMaintenanceCost     float64 `json:"npvMaintenanceCost"`
	TotalOpportunityCost   float64 `json:"totalOpportunityCost"`
	TotalEnvironmentalCost float64 `json:"totalEnvironmentalCost"`
	TotalCost              float64 `json:"totalCost"`
	CostPerSpace           float64 `json:"costPerSpace"`
	CostPerYear            float64 `json:"costPerYear"`
}

// ComputeBreakdown computes the full cost breakdown for the given parameters.
// It is deterministic and side-effect free; invalid parameters are rejected
// before any computation.
//
// Maintenance is a period-by-period discounted cash flow sum over whole
// years. The per-period form keeps a zero discount rate well-defined (the
// discount factor is simply 1) and matches the inflation/discount asymmetry
// exactly, unlike a closed-form annuity. The opportunity multiplier scales
// land cost as a raw scalar, and environmental cost uses years as a
// continuous, undiscounted multiplier.
func ComputeBreakdown(p CostParameters) (CostBreakdown, error) {
	if err := p.Validate(); err != nil {
		return CostBreakdown{}, err
	}

	land := p.LandCostPerSqm * p.Spaces * constants.AreaPerSpaceSqm
	construction := p.ConstructionCostPerSpace * p.Spaces

	npvMaintenance := 0.0
	annualMaintenance := p.MaintenanceCostPerSpacePerYear * p.Spaces
	for year := 1; year <= int(p.Years); year++ {
		nominal := annualMaintenance * mathutil.GrowthFactor(p.InflationRatePct, year)
		npvMaintenance += nominal / mathutil.GrowthFactor(p.DiscountRatePct, year)
	}

	opportunity := land * p.OpportunityMultiplier
	environmental := p.EnvironmentalCostPerSpacePerYear * p.Spaces * p.Years

	total := land + construction + npvMaintenance + opportunity + environmental

	return CostBreakdown{
		TotalLandCost:          land,
		TotalConstructionCost:  construction,
		NPVMaintenanceCost:     npvMaintenance,
		TotalOpportunityCost:   opportunity,
		TotalEnvironmentalCost: environmental,
		TotalCost:              total,
		CostPerSpace:           total / p.Spaces,
		CostPerYear:            total / p.Years,
	}, nil
}
