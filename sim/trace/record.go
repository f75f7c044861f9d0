// Package trace provides transition-trace recording for offline analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Kind identifies the type of a state transition.
type Kind string

const (
	KindBreakdown   Kind = "breakdown"    // machine transitioned Working → Broken
	KindRepairStart Kind = "repair_start" // repairman took a machine from the queue
	KindRepairDone  Kind = "repair_done"  // machine transitioned Broken → Working
	KindPreemption  Kind = "preemption"   // background job abandoned for a repair
	KindJobDone     Kind = "job_done"     // background job ran to completion
	KindPartDone    Kind = "part_done"    // machine completed a part
)

// TransitionRecord captures a single state transition.
// MachineID is -1 for transitions that involve no machine (job_done).
type TransitionRecord struct {
	Clock     float64 `json:"clock"`
	MachineID int     `json:"machine_id"`
	Kind      Kind    `json:"kind"`
	Detail    string  `json:"detail,omitempty"`
}
