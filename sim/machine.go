package sim

import "fmt"

// MachineState is the closed set of machine states.
type MachineState int

const (
	// MachineWorking means the machine is producing a part. Both the part
	// progress clock and the failure clock run while working.
	MachineWorking MachineState = iota
	// MachineBroken means the machine is waiting for, or undergoing, repair.
	// A broken machine makes no autonomous transitions; only a completed
	// repair returns it to MachineWorking.
	MachineBroken
)

func (s MachineState) String() string {
	switch s {
	case MachineWorking:
		return "working"
	case MachineBroken:
		return "broken"
	default:
		return fmt.Sprintf("MachineState(%d)", int(s))
	}
}

// Machine is the per-unit production state. Owned exclusively by the
// Simulator; mutated only inside Advance and ForceBreakdown.
type Machine struct {
	ID             int
	State          MachineState
	PartProgress   float64 // time accumulated on the current part
	PartDuration   float64 // sampled total time the current part needs
	TimeToFailure  float64 // remaining working time before the next breakdown
	RepairProgress float64 // time accumulated on the current repair, if broken
	PartsMade      int     // completed parts; monotonically non-decreasing
	Breakdowns     int     // lifetime breakdown count, stochastic plus forced
}
