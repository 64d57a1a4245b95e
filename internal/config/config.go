// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for parkcost.
type Configuration struct {
	Scenarios []ScenarioConfig
	Workplace *WorkplaceConfig `yaml:"workplace,omitempty"`
	Urban     *UrbanConfig     `yaml:"urban,omitempty"`
	Logging   LoggingConfig    `yaml:"logging,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ScenarioConfig describes one named cost scenario along with the analyses
// to run against it.
type ScenarioConfig struct {
	Name        string
	ParkingType string
	Save        bool
	Parameters  model.CostParameters
	Sensitivity *SensitivityConfig `yaml:"sensitivity,omitempty"`
	MonteCarlo  *MonteCarloConfig  `yaml:"monteCarlo,omitempty"`
}

// SensitivityConfig selects the parameter to sweep for a scenario.
type SensitivityConfig struct {
	Parameter string
}

// MonteCarloConfig configures a simulation run for a scenario. A nil Seed
// uses a time-seeded source.
type MonteCarloConfig struct {
	Count int
	Seed  *int64 `yaml:"seed,omitempty"`
}

// WorkplaceConfig holds the workplace model inputs and the optional
// alternatives comparison.
type WorkplaceConfig struct {
	Parameters   model.WorkplaceParameters
	Alternatives *model.AlternativeParameters `yaml:"alternatives,omitempty"`
}

// UrbanConfig holds the urban planning model inputs.
type UrbanConfig struct {
	Street         *model.StreetParameters `yaml:"street,omitempty"`
	AlternativeUse model.AlternativeUse    `yaml:"alternativeUse,omitempty"`
	Demand         *model.DemandParameters `yaml:"demand,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors are left to the model's own
// validation at computation time.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 && c.Workplace == nil && c.Urban == nil {
		warnings = append(warnings, "configuration defines no scenarios and no workplace or urban analysis")
	}

	seen := make(map[string]int)
	for _, scenario := range c.Scenarios {
		seen[scenario.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			warnings = append(warnings, fmt.Sprintf("scenario name %q appears %d times; removal by name deletes all of them", name, count))
		}
	}

	for _, scenario := range c.Scenarios {
		if scenario.Name == "" {
			warnings = append(warnings, "a scenario has an empty name")
		}
		if scenario.Parameters.OccupancyRatePct > 100 {
			warnings = append(warnings, fmt.Sprintf("scenario %q has occupancy above 100%%", scenario.Name))
		}
		if scenario.MonteCarlo != nil && scenario.MonteCarlo.Count == 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %q requests a Monte Carlo run with count 0; no statistics will be produced", scenario.Name))
		}
		if scenario.MonteCarlo != nil && scenario.MonteCarlo.Count > constants.MaxSimulationCount {
			warnings = append(warnings, fmt.Sprintf("scenario %q requests %d simulations, above the limit of %d", scenario.Name, scenario.MonteCarlo.Count, constants.MaxSimulationCount))
		}
	}

	return warnings
}
