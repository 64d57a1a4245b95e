package model

import (
	"fmt"
	"math"

	"github.com/urbancost/parkcost/pkg/constants"
)

// AlternativeUse identifies what a street parking lane could be converted to.
type AlternativeUse string

const (
	BikeLane      AlternativeUse = "Bike Lane"
	WiderSidewalk AlternativeUse = "Wider Sidewalk"
	GreenSpace    AlternativeUse = "Green Space"
	BusLane       AlternativeUse = "Bus Lane"
)

// bikeLaneWidthM is the assumed width of a converted bike lane.
const bikeLaneWidthM = 1.5

// StreetParameters describes a stretch of street considered for parking or
// conversion.
type StreetParameters struct {
	StreetLengthM       float64 `yaml:"streetLengthM" json:"streetLengthM"`
	ParkingSpaceLengthM float64 `yaml:"parkingSpaceLengthM" json:"parkingSpaceLengthM"`
	ParkingLaneWidthM   float64 `yaml:"parkingLaneWidthM" json:"parkingLaneWidthM"`
}

// Validate checks the street geometry inputs.
func (p StreetParameters) Validate() error {
	if p.StreetLengthM < 0 {
		return fmt.Errorf("%w: streetLengthM must be non-negative, got %v", ErrInvalidParameter, p.StreetLengthM)
	}
	if p.ParkingSpaceLengthM <= 0 {
		return fmt.Errorf("%w: parkingSpaceLengthM must be positive, got %v", ErrInvalidParameter, p.ParkingSpaceLengthM)
	}
	if p.ParkingLaneWidthM < 0 {
		return fmt.Errorf("%w: parkingLaneWidthM must be non-negative, got %v", ErrInvalidParameter, p.ParkingLaneWidthM)
	}
	return nil
}

// StreetAnalysis summarizes the parking capacity of a street and the area an
// alternative use would reclaim.
type StreetAnalysis struct {
	Spaces             int            `json:"spaces"`
	ParkingAreaSqm     float64        `json:"parkingAreaSqm"`
	AlternativeUse     AlternativeUse `json:"alternativeUse"`
	AlternativeAreaSqm float64        `json:"alternativeAreaSqm"`
	AlternativeLengthM float64        `json:"alternativeLengthM"`
}

// AnalyzeStreet computes how many parking spaces a street yields and what a
// given alternative use would reclaim. Space count truncates to whole stalls.
func AnalyzeStreet(p StreetParameters, use AlternativeUse) (StreetAnalysis, error) {
	if err := p.Validate(); err != nil {
		return StreetAnalysis{}, err
	}

	spaces := int(math.Floor(p.StreetLengthM / p.ParkingSpaceLengthM))
	parkingArea := float64(spaces) * p.ParkingSpaceLengthM * p.ParkingLaneWidthM

	analysis := StreetAnalysis{
		Spaces:         spaces,
		ParkingAreaSqm: parkingArea,
		AlternativeUse: use,
	}

	switch use {
	case BikeLane:
		analysis.AlternativeLengthM = p.StreetLengthM
		analysis.AlternativeAreaSqm = p.StreetLengthM * bikeLaneWidthM
	case WiderSidewalk:
		analysis.AlternativeAreaSqm = p.StreetLengthM * p.ParkingLaneWidthM
	case GreenSpace:
		analysis.AlternativeAreaSqm = parkingArea
	case BusLane:
		analysis.AlternativeLengthM = p.StreetLengthM
	default:
		return StreetAnalysis{}, fmt.Errorf("%w: unknown alternative use %q", ErrInvalidParameter, use)
	}

	return analysis, nil
}

// DemandParameters holds the inputs for the parking demand and fee elasticity
// model.
type DemandParameters struct {
	Population          float64 `yaml:"population" json:"population"`
	CarOwnershipRatePct float64 `yaml:"carOwnershipRatePct" json:"carOwnershipRatePct"`
	DemandFactor        float64 `yaml:"demandFactor" json:"demandFactor"`
	ParkingFeePerHour   float64 `yaml:"parkingFeePerHour" json:"parkingFeePerHour"`
	PriceElasticity     float64 `yaml:"priceElasticity" json:"priceElasticity"`
}

// Validate checks the demand model inputs.
func (p DemandParameters) Validate() error {
	if p.Population < 0 {
		return fmt.Errorf("%w: population must be non-negative, got %v", ErrInvalidParameter, p.Population)
	}
	if p.CarOwnershipRatePct < 0 || p.CarOwnershipRatePct > 100 {
		return fmt.Errorf("%w: carOwnershipRatePct must be between 0 and 100, got %v", ErrInvalidParameter, p.CarOwnershipRatePct)
	}
	if p.DemandFactor < 0 {
		return fmt.Errorf("%w: demandFactor must be non-negative, got %v", ErrInvalidParameter, p.DemandFactor)
	}
	if p.ParkingFeePerHour < 0 {
		return fmt.Errorf("%w: parkingFeePerHour must be non-negative, got %v", ErrInvalidParameter, p.ParkingFeePerHour)
	}
	return nil
}

// DemandEstimate is the output of the demand model: current demand plus the
// projected demand after applying the configured fee.
type DemandEstimate struct {
	EstimatedDemand int     `json:"estimatedDemand"`
	DemandChange    float64 `json:"demandChange"`
	NewDemand       int     `json:"newDemand"`
}

// EstimateDemand derives parking demand from population and car ownership,
// then applies price elasticity relative to the base hourly fee. Demand
// counts truncate to whole spaces.
func EstimateDemand(p DemandParameters) (DemandEstimate, error) {
	if err := p.Validate(); err != nil {
		return DemandEstimate{}, err
	}

	demand := int(p.Population * p.CarOwnershipRatePct / constants.PercentageMultiplier * p.DemandFactor)
	change := p.PriceElasticity * (p.ParkingFeePerHour/constants.BaseParkingFeePerHour - 1)
	newDemand := int(float64(demand) * (1 + change))

	return DemandEstimate{
		EstimatedDemand: demand,
		DemandChange:    change,
		NewDemand:       newDemand,
	}, nil
}
