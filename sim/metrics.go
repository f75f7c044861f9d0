// Tracks simulation-wide statistics such as throughput, breakdown counts
// and repairman utilization.

package sim

import "fmt"

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating shop throughput and debugging behavior over time.
type Metrics struct {
	TotalParts      int     // parts completed across all machines
	TotalBreakdowns int     // breakdowns across all machines, forced included
	RepairCount     int     // repairs completed by the repairman
	TimeRepairing   float64 // sim-minutes the repairman spent repairing
	TimeOtherJobs   float64 // sim-minutes the repairman spent on background jobs
	JobsCompleted   int     // background jobs finished without preemption
	Preemptions     int     // background jobs abandoned for repair work
	PeakQueueLen    int     // max simultaneous machines waiting for repair
}

// RepairUtilization returns the fraction of busy time spent repairing,
// or 0 before the repairman has done anything.
func (m *Metrics) RepairUtilization() float64 {
	busy := m.TimeRepairing + m.TimeOtherJobs
	if busy == 0 {
		return 0
	}
	return m.TimeRepairing / busy
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(clock float64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Simulated Time       : %.1f sim-minutes\n", clock)
	fmt.Printf("Total Parts Produced : %d\n", m.TotalParts)
	fmt.Printf("Total Breakdowns     : %d\n", m.TotalBreakdowns)
	fmt.Printf("Repairs Completed    : %d\n", m.RepairCount)
	fmt.Printf("Background Jobs Done : %d\n", m.JobsCompleted)
	fmt.Printf("Preemptions          : %d\n", m.Preemptions)
	fmt.Printf("Peak Repair Queue    : %d\n", m.PeakQueueLen)
	fmt.Printf("Repair Utilization   : %.1f%%\n", m.RepairUtilization()*100)
	if clock > 0 {
		fmt.Printf("Throughput           : %.3f parts/sim-minute\n", float64(m.TotalParts)/clock)
	}
}
