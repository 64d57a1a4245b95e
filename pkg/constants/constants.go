// Package constants provides shared constants for the parkcost application.
package constants

// TimestampLayout is the format used for scenario timestamps in listings and
// CSV exports.
const TimestampLayout = "2006-01-02 15:04:05"

// Cost model constants
const (
	// AreaPerSpaceSqm is the land area attributed to one parking space,
	// covering the stall plus its share of the access lane.
	AreaPerSpaceSqm = 15.0

	// SurfaceAreaPerSpaceSqm is the land area per space for surface lots in
	// the workplace model, which carry wider circulation aisles.
	SurfaceAreaPerSpaceSqm = 30.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// WorkplaceAnnualizationRate spreads capital costs over time in the
	// workplace model (5% of construction plus land per year).
	WorkplaceAnnualizationRate = 0.05

	// WorkplaceMaintenancePerSpacePerYear is the assumed workplace
	// maintenance cost per space per year.
	WorkplaceMaintenancePerSpacePerYear = 500.0

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WorkdaysPerWeek is the number of commuting days in a work week
	WorkdaysPerWeek = 5.0

	// CarpoolSpacesSavedPerParticipant is the fraction of a space freed by
	// each carpooling employee.
	CarpoolSpacesSavedPerParticipant = 0.5

	// BaseParkingFeePerHour is the reference hourly fee for the demand
	// elasticity model.
	BaseParkingFeePerHour = 2.0
)

// Sensitivity sweep constants
const (
	// SensitivityRangeStartPct is the first perturbation percentage applied
	// during a sweep.
	SensitivityRangeStartPct = 10

	// SensitivityRangeEndPct is the last perturbation percentage (inclusive).
	SensitivityRangeEndPct = 50

	// SensitivityStepPct is the sweep step size.
	SensitivityStepPct = 5
)

// Monte Carlo constants
const (
	// LandCostSigmaFraction is the standard deviation of sampled land cost
	// as a fraction of its base value.
	LandCostSigmaFraction = 0.10

	// ConstructionCostSigmaFraction is the standard deviation of sampled
	// construction cost as a fraction of its base value.
	ConstructionCostSigmaFraction = 0.15

	// MaintenanceCostSigmaFraction is the standard deviation of sampled
	// maintenance cost as a fraction of its base value.
	MaintenanceCostSigmaFraction = 0.20

	// ConfidenceLevel is the confidence level for simulation intervals.
	ConfidenceLevel = 0.95

	// MaxSimulationCount bounds a Monte Carlo run so a single request cannot
	// stall the caller indefinitely.
	MaxSimulationCount = 100000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size
	// accepted by the API (256 KB).
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)
