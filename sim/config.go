package sim

import "fmt"

// DefaultLogCapacity is the number of recent event log entries retained
// when Config.LogCapacity is zero.
const DefaultLogCapacity = 20

// Config holds all parameters needed to construct a simulation.
// Validate rejects degenerate values before any state is created.
type Config struct {
	NumMachines       int     // number of production machines (must be > 0)
	PartMean          float64 // mean part processing time in sim-minutes (must be > 0)
	PartSigma         float64 // std dev of part processing time (must be >= 0)
	MeanTimeToFailure float64 // MTTF, mean of the exponential breakdown interval (must be > 0)
	RepairDuration    float64 // fixed time to repair a broken machine (must be > 0)
	OtherJobDuration  float64 // duration of the repairman's background jobs (must be > 0)
	Seed              int64   // master seed for the PartitionedRNG
	LogCapacity       int     // event log ring size (0 = DefaultLogCapacity)
}

// DefaultConfig returns the reference shop-floor parameters: ten machines,
// parts averaging 10 sim-minutes with sigma 2, MTTF 300, and 30-minute
// repairs and background jobs.
func DefaultConfig() Config {
	return Config{
		NumMachines:       10,
		PartMean:          10.0,
		PartSigma:         2.0,
		MeanTimeToFailure: 300.0,
		RepairDuration:    30.0,
		OtherJobDuration:  30.0,
		Seed:              42,
		LogCapacity:       DefaultLogCapacity,
	}
}

// Validate checks that every parameter is in range. Returns a wrapped
// ErrInvalidConfig naming the offending field.
func (c Config) Validate() error {
	if c.NumMachines <= 0 {
		return fmt.Errorf("%w: NumMachines must be > 0, got %d", ErrInvalidConfig, c.NumMachines)
	}
	if c.PartMean <= 0 {
		return fmt.Errorf("%w: PartMean must be > 0, got %v", ErrInvalidConfig, c.PartMean)
	}
	if c.PartSigma < 0 {
		return fmt.Errorf("%w: PartSigma must be >= 0, got %v", ErrInvalidConfig, c.PartSigma)
	}
	if c.MeanTimeToFailure <= 0 {
		return fmt.Errorf("%w: MeanTimeToFailure must be > 0, got %v", ErrInvalidConfig, c.MeanTimeToFailure)
	}
	if c.RepairDuration <= 0 {
		return fmt.Errorf("%w: RepairDuration must be > 0, got %v", ErrInvalidConfig, c.RepairDuration)
	}
	if c.OtherJobDuration <= 0 {
		return fmt.Errorf("%w: OtherJobDuration must be > 0, got %v", ErrInvalidConfig, c.OtherJobDuration)
	}
	if c.LogCapacity < 0 {
		return fmt.Errorf("%w: LogCapacity must be >= 0, got %d", ErrInvalidConfig, c.LogCapacity)
	}
	return nil
}

// logCapacity resolves the effective event log size.
func (c Config) logCapacity() int {
	if c.LogCapacity == 0 {
		return DefaultLogCapacity
	}
	return c.LogCapacity
}
