package model

import (
	"fmt"

	"github.com/urbancost/parkcost/pkg/constants"
)

// WorkplaceParkingType identifies the construction style of a workplace
// parking facility.
type WorkplaceParkingType string

// LocationType identifies the land market a facility sits in.
type LocationType string

const (
	SurfaceLot  WorkplaceParkingType = "Surface Lot"
	Structured  WorkplaceParkingType = "Structured Parking"
	Underground WorkplaceParkingType = "Underground"

	UrbanCenter LocationType = "Urban Center"
	Suburban    LocationType = "Suburban"
	Rural       LocationType = "Rural"
)

// constructionCostPerSpace holds per-space construction cost constants keyed
// by parking type and location. Values are representative figures and should
// be calibrated against local data.
var constructionCostPerSpace = map[WorkplaceParkingType]map[LocationType]float64{
	SurfaceLot:  {UrbanCenter: 5000, Suburban: 3000, Rural: 2000},
	Structured:  {UrbanCenter: 20000, Suburban: 15000, Rural: 12000},
	Underground: {UrbanCenter: 35000, Suburban: 25000, Rural: 20000},
}

// landCostPerSqm holds per-square-meter land cost constants by location.
var landCostPerSqm = map[LocationType]float64{
	UrbanCenter: 1000,
	Suburban:    500,
	Rural:       200,
}

// monthlyRentPerSqm holds the achievable monthly rent per square meter by
// location, used as the opportunity cost of holding land as parking.
var monthlyRentPerSqm = map[LocationType]float64{
	UrbanCenter: 50,
	Suburban:    30,
	Rural:       15,
}

// WorkplaceParameters holds the inputs for the workplace true-cost model.
type WorkplaceParameters struct {
	Spaces      float64              `yaml:"spaces" json:"spaces"`
	ParkingType WorkplaceParkingType `yaml:"parkingType" json:"parkingType"`
	Location    LocationType         `yaml:"location" json:"location"`
}

// WorkplaceBreakdown is the annualized cost picture of providing employee
// parking.
type WorkplaceBreakdown struct {
	ConstructionCost      float64 `json:"constructionCost"`
	LandCost              float64 `json:"landCost"`
	LandAreaSqm           float64 `json:"landAreaSqm"`
	AnnualMaintenanceCost float64 `json:"annualMaintenanceCost"`
	AnnualOpportunityCost float64 `json:"annualOpportunityCost"`
	TotalAnnualCost       float64 `json:"totalAnnualCost"`
	CostPerSpacePerYear   float64 `json:"costPerSpacePerYear"`
	CostPerSpacePerMonth  float64 `json:"costPerSpacePerMonth"`
}

// Validate checks the workplace parameter set, including that the parking and
// location types resolve in the cost tables.
func (p WorkplaceParameters) Validate() error {
	if p.Spaces <= 0 {
		return fmt.Errorf("%w: spaces must be positive, got %v", ErrInvalidParameter, p.Spaces)
	}
	byLocation, ok := constructionCostPerSpace[p.ParkingType]
	if !ok {
		return fmt.Errorf("%w: unknown parking type %q", ErrInvalidParameter, p.ParkingType)
	}
	if _, ok := byLocation[p.Location]; !ok {
		return fmt.Errorf("%w: unknown location type %q", ErrInvalidParameter, p.Location)
	}
	return nil
}

// ComputeWorkplaceBreakdown computes the annualized true cost of workplace
// parking. Capital costs (construction plus land) are annualized at a flat
// rate; opportunity cost assumes the land could otherwise be rented at the
// location's market rate.
func ComputeWorkplaceBreakdown(p WorkplaceParameters) (WorkplaceBreakdown, error) {
	if err := p.Validate(); err != nil {
		return WorkplaceBreakdown{}, err
	}

	construction := p.Spaces * constructionCostPerSpace[p.ParkingType][p.Location]

	areaPerSpace := constants.AreaPerSpaceSqm
	if p.ParkingType == SurfaceLot {
		areaPerSpace = constants.SurfaceAreaPerSpaceSqm
	}
	landArea := p.Spaces * areaPerSpace
	land := landArea * landCostPerSqm[p.Location]

	maintenance := p.Spaces * constants.WorkplaceMaintenancePerSpacePerYear
	opportunity := landArea * monthlyRentPerSqm[p.Location] * constants.MonthsPerYear

	totalAnnual := (construction+land)*constants.WorkplaceAnnualizationRate + maintenance + opportunity

	return WorkplaceBreakdown{
		ConstructionCost:      construction,
		LandCost:              land,
		LandAreaSqm:           landArea,
		AnnualMaintenanceCost: maintenance,
		AnnualOpportunityCost: opportunity,
		TotalAnnualCost:       totalAnnual,
		CostPerSpacePerYear:   totalAnnual / p.Spaces,
		CostPerSpacePerMonth:  totalAnnual / p.Spaces / constants.MonthsPerYear,
	}, nil
}

// AlternativeParameters holds the inputs for comparing parking provision
// against transit subsidies, remote work, and carpool incentives.
type AlternativeParameters struct {
	MonthlyTransitPassCost  float64 `yaml:"monthlyTransitPassCost" json:"monthlyTransitPassCost"`
	RemoteDaysPerWeek       float64 `yaml:"remoteDaysPerWeek" json:"remoteDaysPerWeek"`
	CarpoolRatePct          float64 `yaml:"carpoolRatePct" json:"carpoolRatePct"`
	MonthlyCarpoolIncentive float64 `yaml:"monthlyCarpoolIncentive" json:"monthlyCarpoolIncentive"`
}

// Validate checks the alternative comparison inputs.
func (p AlternativeParameters) Validate() error {
	if p.MonthlyTransitPassCost < 0 {
		return fmt.Errorf("%w: monthlyTransitPassCost must be non-negative, got %v", ErrInvalidParameter, p.MonthlyTransitPassCost)
	}
	if p.RemoteDaysPerWeek < 0 || p.RemoteDaysPerWeek > constants.WorkdaysPerWeek {
		return fmt.Errorf("%w: remoteDaysPerWeek must be between 0 and %v, got %v", ErrInvalidParameter, constants.WorkdaysPerWeek, p.RemoteDaysPerWeek)
	}
	if p.CarpoolRatePct < 0 || p.CarpoolRatePct > 100 {
		return fmt.Errorf("%w: carpoolRatePct must be between 0 and 100, got %v", ErrInvalidParameter, p.CarpoolRatePct)
	}
	if p.MonthlyCarpoolIncentive < 0 {
		return fmt.Errorf("%w: monthlyCarpoolIncentive must be non-negative, got %v", ErrInvalidParameter, p.MonthlyCarpoolIncentive)
	}
	return nil
}

// AlternativeComparison holds the cost of each alternative to providing the
// full parking supply.
type AlternativeComparison struct {
	AnnualTransitSubsidy float64 `json:"annualTransitSubsidy"`
	RemoteReducedSpaces  float64 `json:"remoteReducedSpaces"`
	RemoteReducedCost    float64 `json:"remoteReducedCost"`
	CarpoolSpacesSaved   float64 `json:"carpoolSpacesSaved"`
	CarpoolIncentiveCost float64 `json:"carpoolIncentiveCost"`
	CarpoolNetSavings    float64 `json:"carpoolNetSavings"`
}

// CompareAlternatives evaluates transit subsidies, remote work, and carpool
// incentives against an existing workplace breakdown. Carpool net savings is
// the share of annual cost attributable to the saved spaces minus the
// incentive payout; it can be negative when the incentive outruns the
// avoided cost.
func CompareAlternatives(wp WorkplaceParameters, alt AlternativeParameters, breakdown WorkplaceBreakdown) (AlternativeComparison, error) {
	if err := wp.Validate(); err != nil {
		return AlternativeComparison{}, err
	}
	if err := alt.Validate(); err != nil {
		return AlternativeComparison{}, err
	}

	transit := alt.MonthlyTransitPassCost * constants.MonthsPerYear * wp.Spaces

	remoteFraction := alt.RemoteDaysPerWeek / constants.WorkdaysPerWeek
	remoteSpaces := wp.Spaces * (1 - remoteFraction)
	remoteCost := breakdown.TotalAnnualCost * (1 - remoteFraction)

	carpoolers := wp.Spaces * alt.CarpoolRatePct / constants.PercentageMultiplier
	spacesSaved := carpoolers * constants.CarpoolSpacesSavedPerParticipant
	incentiveCost := alt.MonthlyCarpoolIncentive * constants.MonthsPerYear * carpoolers
	netSavings := breakdown.TotalAnnualCost*(spacesSaved/wp.Spaces) - incentiveCost

	return AlternativeComparison{
		AnnualTransitSubsidy: transit,
		RemoteReducedSpaces:  remoteSpaces,
		RemoteReducedCost:    remoteCost,
		CarpoolSpacesSaved:   spacesSaved,
		CarpoolIncentiveCost: incentiveCost,
		CarpoolNetSavings:    netSavings,
	}, nil
}
