package sim

import "errors"

// Sentinel errors for the simulation boundary. Callers match them with
// errors.Is; the wrapped message carries the offending value.
var (
	// ErrInvalidConfig is returned by Config.Validate and NewSimulator when a
	// configuration parameter is out of range. No state is created.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidMachineID is returned by ForceBreakdown when the machine id
	// is out of range. The simulation state is unchanged.
	ErrInvalidMachineID = errors.New("invalid machine id")

	// ErrEmptyQueue is returned by RepairQueue.DequeueHead on an empty queue.
	// The repairman checks Len first, so seeing this error from Advance is a
	// programming error, not a runtime condition.
	ErrEmptyQueue = errors.New("repair queue is empty")

	// ErrNegativeDelta is returned by Advance for deltas < 0.
	ErrNegativeDelta = errors.New("negative time delta")
)
