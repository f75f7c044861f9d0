package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML file format for shop configurations.
// Absent fields keep the DefaultConfig values, so a scenario file only
// needs to name what it changes.
//
//	machines: 5
//	part_mean: 8.0
//	part_sigma: 1.5
//	mttf: 120.0
//	repair_duration: 25.0
//	other_job_duration: 30.0
//	seed: 7
//	horizon: 1000.0
//	step: 1.0
type Scenario struct {
	NumMachines       int     `yaml:"machines"`
	PartMean          float64 `yaml:"part_mean"`
	PartSigma         float64 `yaml:"part_sigma"`
	MeanTimeToFailure float64 `yaml:"mttf"`
	RepairDuration    float64 `yaml:"repair_duration"`
	OtherJobDuration  float64 `yaml:"other_job_duration"`
	Seed              int64   `yaml:"seed"`
	LogCapacity       int     `yaml:"log_capacity,omitempty"`

	// Driver defaults, used by the CLI when the corresponding flags are
	// left at their zero values. Not part of the core Config.
	Horizon float64 `yaml:"horizon,omitempty"`
	Step    float64 `yaml:"step,omitempty"`
}

// defaultScenario pre-populates a Scenario with DefaultConfig values so
// unmarshalling only overrides the fields the file names.
func defaultScenario() Scenario {
	cfg := DefaultConfig()
	return Scenario{
		NumMachines:       cfg.NumMachines,
		PartMean:          cfg.PartMean,
		PartSigma:         cfg.PartSigma,
		MeanTimeToFailure: cfg.MeanTimeToFailure,
		RepairDuration:    cfg.RepairDuration,
		OtherJobDuration:  cfg.OtherJobDuration,
		Seed:              cfg.Seed,
		LogCapacity:       cfg.LogCapacity,
	}
}

// Config converts the scenario into a validated-shape Config.
// Call Config.Validate (or LoadScenario, which does) before use.
func (sc *Scenario) Config() Config {
	return Config{
		NumMachines:       sc.NumMachines,
		PartMean:          sc.PartMean,
		PartSigma:         sc.PartSigma,
		MeanTimeToFailure: sc.MeanTimeToFailure,
		RepairDuration:    sc.RepairDuration,
		OtherJobDuration:  sc.OtherJobDuration,
		Seed:              sc.Seed,
		LogCapacity:       sc.LogCapacity,
	}
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	sc := defaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := sc.Config().Validate(); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if sc.Horizon < 0 {
		return nil, fmt.Errorf("load scenario %s: %w: horizon must be >= 0, got %v", path, ErrInvalidConfig, sc.Horizon)
	}
	if sc.Step < 0 {
		return nil, fmt.Errorf("load scenario %s: %w: step must be >= 0, got %v", path, ErrInvalidConfig, sc.Step)
	}
	return &sc, nil
}
