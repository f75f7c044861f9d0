package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransitions int
	CountsByKind     map[Kind]int
	PartsCompleted   int
	Breakdowns       int
	Preemptions      int
	// MeanRepairWait is the mean time a machine spent in the repair queue,
	// measured from its breakdown record to its repair_start record.
	// Zero when no repair ever started.
	MeanRepairWait float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CountsByKind: make(map[Kind]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransitions = len(st.Records)

	brokeAt := make(map[int]float64)
	totalWait := 0.0
	waits := 0
	for _, r := range st.Records {
		summary.CountsByKind[r.Kind]++
		switch r.Kind {
		case KindPartDone:
			summary.PartsCompleted++
		case KindBreakdown:
			summary.Breakdowns++
			brokeAt[r.MachineID] = r.Clock
		case KindPreemption:
			summary.Preemptions++
		case KindRepairStart:
			if t, ok := brokeAt[r.MachineID]; ok {
				totalWait += r.Clock - t
				waits++
				delete(brokeAt, r.MachineID)
			}
		}
	}
	if waits > 0 {
		summary.MeanRepairWait = totalWait / float64(waits)
	}

	return summary
}
