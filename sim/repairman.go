package sim

import "fmt"

// RepairmanState is the closed set of repairman states.
type RepairmanState int

const (
	// RepairmanIdle is a transient state: within the same tick the repairman
	// either takes the head of the repair queue or falls back to a fresh
	// background job, so a settled aggregate never rests in Idle.
	RepairmanIdle RepairmanState = iota
	// RepairmanOtherJob means the repairman is working a low-priority
	// background job. Preempted immediately when a machine breaks down.
	RepairmanOtherJob
	// RepairmanRepairing means the repairman is fixing ActiveMachine.
	// Repair work is never preempted.
	RepairmanRepairing
)

func (s RepairmanState) String() string {
	switch s {
	case RepairmanIdle:
		return "idle"
	case RepairmanOtherJob:
		return "other job"
	case RepairmanRepairing:
		return "repairing"
	default:
		return fmt.Sprintf("RepairmanState(%d)", int(s))
	}
}

// Repairman is the single shared repair resource. ActiveMachine is non-nil
// iff State is RepairmanRepairing, and that machine is always Broken.
type Repairman struct {
	State            RepairmanState
	ActiveMachine    *Machine // machine under repair, nil unless Repairing
	OtherJobProgress float64  // time accumulated on the current background job
	OtherJobDuration float64  // total time the current background job needs
}

// ActiveMachineID returns the id of the machine under repair, or -1.
func (r *Repairman) ActiveMachineID() int {
	if r.ActiveMachine == nil {
		return -1
	}
	return r.ActiveMachine.ID
}
