// Package model implements the parking cost model: parameter validation, the
// Shoup-style cost breakdown, and the independent workplace and urban
// alternative models.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates an input that fails validation. No partial
// results are produced for invalid input.
var ErrInvalidParameter = errors.New("invalid parameter")

// CostParameters holds all inputs for one breakdown computation. Values are
// treated as immutable per calculation; analyses that perturb parameters do
// so on copies.
type CostParameters struct {
	Spaces                           float64 `yaml:"spaces" json:"spaces"`
	Years                            float64 `yaml:"years" json:"years"`
	LandCostPerSqm                   float64 `yaml:"landCostPerSqm" json:"landCostPerSqm"`
	ConstructionCostPerSpace         float64 `yaml:"constructionCostPerSpace" json:"constructionCostPerSpace"`
	MaintenanceCostPerSpacePerYear   float64 `yaml:"maintenanceCostPerSpacePerYear" json:"maintenanceCostPerSpacePerYear"`
	InflationRatePct                 float64 `yaml:"inflationRatePct" json:"inflationRatePct"`
	DiscountRatePct                  float64 `yaml:"discountRatePct" json:"discountRatePct"`
	OccupancyRatePct                 float64 `yaml:"occupancyRatePct" json:"occupancyRatePct"`
	OpportunityMultiplier            float64 `yaml:"opportunityMultiplier" json:"opportunityMultiplier"`
	EnvironmentalCostPerSpacePerYear float64 `yaml:"environmentalCostPerSpacePerYear" json:"environmentalCostPerSpacePerYear"`
}

// Validate checks the parameter set against the model's input contract:
// spaces must be positive, years at least one whole period, and every rate
// non-negative.
func (p CostParameters) Validate() error {
	if p.Spaces <= 0 {
		return fmt.Errorf("%w: spaces must be positive, got %v", ErrInvalidParameter, p.Spaces)
	}
	if p.Years < 1 {
		return fmt.Errorf("%w: years must be at least 1, got %v", ErrInvalidParameter, p.Years)
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"landCostPerSqm", p.LandCostPerSqm},
		{"constructionCostPerSpace", p.ConstructionCostPerSpace},
		{"maintenanceCostPerSpacePerYear", p.MaintenanceCostPerSpacePerYear},
		{"inflationRatePct", p.InflationRatePct},
		{"discountRatePct", p.DiscountRatePct},
		{"occupancyRatePct", p.OccupancyRatePct},
		{"opportunityMultiplier", p.OpportunityMultiplier},
		{"environmentalCostPerSpacePerYear", p.EnvironmentalCostPerSpacePerYear},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidParameter, rate.name, rate.value)
		}
	}
	return nil
}
