package sim

// MachineView is a read-only copy of one machine's state.
type MachineView struct {
	ID             int
	State          MachineState
	PartProgress   float64
	PartDuration   float64
	TimeToFailure  float64
	RepairProgress float64
	PartsMade      int
	Breakdowns     int
}

// RepairmanView is a read-only copy of the repairman's state.
// ActiveMachineID is -1 unless State is RepairmanRepairing.
type RepairmanView struct {
	State            RepairmanState
	ActiveMachineID  int
	OtherJobProgress float64
	OtherJobDuration float64
}

// Snapshot is the read-only view of the aggregate simulation state exposed
// to external consumers. It shares no memory with the live simulation; the
// presentation layer may hold it across ticks.
type Snapshot struct {
	Clock      float64
	Machines   []MachineView
	Repairman  RepairmanView
	QueueIDs   []int
	TotalParts int
	Events     []EventLogEntry
	Metrics    Metrics
	Paused     bool
}

// Snapshot produces a consistent read-only view of the current aggregate.
func (s *Simulator) Snapshot() Snapshot {
	machines := make([]MachineView, len(s.Machines))
	totalParts := 0
	for i, m := range s.Machines {
		machines[i] = MachineView{
			ID:             m.ID,
			State:          m.State,
			PartProgress:   m.PartProgress,
			PartDuration:   m.PartDuration,
			TimeToFailure:  m.TimeToFailure,
			RepairProgress: m.RepairProgress,
			PartsMade:      m.PartsMade,
			Breakdowns:     m.Breakdowns,
		}
		totalParts += m.PartsMade
	}
	return Snapshot{
		Clock:    s.Clock,
		Machines: machines,
		Repairman: RepairmanView{
			State:            s.Repairman.State,
			ActiveMachineID:  s.Repairman.ActiveMachineID(),
			OtherJobProgress: s.Repairman.OtherJobProgress,
			OtherJobDuration: s.Repairman.OtherJobDuration,
		},
		QueueIDs:   s.Queue.IDs(),
		TotalParts: totalParts,
		Events:     s.Log.Entries(),
		Metrics:    *s.Metrics,
		Paused:     s.paused,
	}
}
