// sim/simulator.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shopfloor-sim/shopfloor-sim/sim/trace"
)

// Simulator is the core object that holds simulation time and the full
// aggregate state: machines, repairman, repair queue, event log and metrics.
// All mutation happens inside Advance, ForceBreakdown and Reset; external
// consumers read state only through Snapshot.
type Simulator struct {
	// RunID identifies this run in reports and traces. Not part of the
	// simulated state: two runs with equal seeds differ only in RunID.
	RunID string
	// Clock is the current virtual time in sim-minutes.
	Clock     float64
	Machines  []*Machine
	Repairman *Repairman
	Queue     *RepairQueue
	Log       *EventLog
	Metrics   *Metrics

	cfg            Config
	rng            *PartitionedRNG
	machineRNG     *rand.Rand
	partSampler    NormalSampler
	failureSampler ExponentialSampler
	paused         bool
	trace          *trace.SimulationTrace
}

// NewSimulator validates cfg and builds the aggregate: every machine starts
// Working with a freshly sampled part duration and time-to-failure, and the
// repairman starts on a background job.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulator{
		RunID:          uuid.New().String(),
		Clock:          0,
		Repairman:      &Repairman{},
		Queue:          &RepairQueue{},
		Log:            NewEventLog(cfg.logCapacity()),
		Metrics:        &Metrics{},
		cfg:            cfg,
		rng:            rng,
		machineRNG:     rng.ForSubsystem(SubsystemMachines),
		partSampler:    NormalSampler{Mean: cfg.PartMean, Sigma: cfg.PartSigma},
		failureSampler: ExponentialSampler{Mean: cfg.MeanTimeToFailure},
	}

	s.Machines = make([]*Machine, cfg.NumMachines)
	for i := range s.Machines {
		s.Machines[i] = &Machine{
			ID:            i,
			State:         MachineWorking,
			PartDuration:  s.partSampler.Sample(s.machineRNG),
			TimeToFailure: s.failureSampler.Sample(s.machineRNG),
		}
	}

	s.Repairman.State = RepairmanOtherJob
	s.Repairman.OtherJobDuration = s.nextOtherJobDuration()

	logrus.Debugf("simulator %s: %d machines, seed %d", s.RunID, cfg.NumMachines, cfg.Seed)
	return s, nil
}

// Config returns the configuration the simulator was built from.
func (s *Simulator) Config() Config {
	return s.cfg
}

// AttachTrace directs transition records into tr. Pass nil to detach.
// Tracing does not affect the simulated state or the event log.
func (s *Simulator) AttachTrace(tr *trace.SimulationTrace) {
	s.trace = tr
}

// nextOtherJobDuration returns the duration of the repairman's next
// background job. The reference shop uses a fixed job length.
func (s *Simulator) nextOtherJobDuration() float64 {
	return s.cfg.OtherJobDuration
}

// record appends a transition record when a trace is attached.
func (s *Simulator) record(kind trace.Kind, machineID int, detail string) {
	if s.trace == nil {
		return
	}
	s.trace.Record(trace.TransitionRecord{
		Clock:     s.Clock,
		MachineID: machineID,
		Kind:      kind,
		Detail:    detail,
	})
}

// Advance moves virtual time forward by delta sim-minutes and returns the
// event log entries emitted during the tick, in emission order.
//
// Evaluation order is fixed: all machines in id order, then the repairman.
// A breakdown during the tick is therefore visible to the repairman's
// dequeue check within the same tick. delta must be >= 0; a zero delta is a
// valid no-op tick (the repairman's dequeue check still runs, so a forced
// breakdown can be picked up without time passing). While paused, Advance
// does nothing.
func (s *Simulator) Advance(delta float64) ([]EventLogEntry, error) {
	if delta < 0 {
		return nil, fmt.Errorf("advance: %w: %v", ErrNegativeDelta, delta)
	}
	if s.paused {
		return nil, nil
	}

	s.Clock += delta
	var events []EventLogEntry
	for _, m := range s.Machines {
		s.stepMachine(m, delta, &events)
	}
	s.stepRepairman(delta, &events)

	if s.Queue.Len() > s.Metrics.PeakQueueLen {
		s.Metrics.PeakQueueLen = s.Queue.Len()
	}
	for _, e := range events {
		s.Log.Append(e)
	}
	return events, nil
}

// stepMachine applies one tick to a single machine. Broken machines make no
// autonomous transitions; their repair clock advances under stepRepairman.
func (s *Simulator) stepMachine(m *Machine, delta float64, out *[]EventLogEntry) {
	switch m.State {
	case MachineBroken:
		return
	case MachineWorking:
		m.PartProgress += delta
		m.TimeToFailure -= delta

		// Breakdown is checked before completion: when both would trigger in
		// the same tick, the interrupted part is lost.
		if m.TimeToFailure <= 0 {
			s.breakMachine(m, out)
			return
		}
		if m.PartProgress >= m.PartDuration {
			m.PartsMade++
			s.Metrics.TotalParts++
			m.PartProgress = 0
			m.PartDuration = s.partSampler.Sample(s.machineRNG)
			s.record(trace.KindPartDone, m.ID, fmt.Sprintf("parts_made=%d", m.PartsMade))
			logrus.Debugf("[t=%07.1f] machine %d completed part #%d", s.Clock, m.ID, m.PartsMade)
		}
	}
}

// breakMachine transitions a Working machine to Broken: the in-progress
// part is discarded, the machine joins the repair queue, and the failure
// clock is resampled immediately for the next working interval.
func (s *Simulator) breakMachine(m *Machine, out *[]EventLogEntry) {
	m.State = MachineBroken
	m.Breakdowns++
	s.Metrics.TotalBreakdowns++
	m.PartProgress = 0
	m.RepairProgress = 0
	m.TimeToFailure = s.failureSampler.Sample(s.machineRNG)
	s.Queue.Enqueue(m.ID)

	*out = append(*out, EventLogEntry{
		Time:     s.Clock,
		Message:  fmt.Sprintf("Machine %d broke down", m.ID),
		Severity: SeverityError,
	})
	s.record(trace.KindBreakdown, m.ID, "")
	logrus.Debugf("[t=%07.1f] machine %d broke down (queue %s)", s.Clock, m.ID, s.Queue)
}

// stepRepairman applies one tick to the repairman in the fixed order:
// advance repair work, else advance the background job, then the preemptive
// dequeue check, then the idle fallback to a fresh background job.
func (s *Simulator) stepRepairman(delta float64, out *[]EventLogEntry) {
	r := s.Repairman

	switch r.State {
	case RepairmanRepairing:
		s.Metrics.TimeRepairing += delta
		m := r.ActiveMachine
		m.RepairProgress += delta
		if m.RepairProgress >= s.cfg.RepairDuration {
			m.State = MachineWorking
			m.RepairProgress = 0
			m.PartProgress = 0
			m.PartDuration = s.partSampler.Sample(s.machineRNG)
			r.ActiveMachine = nil
			r.State = RepairmanIdle
			s.Metrics.RepairCount++

			*out = append(*out, EventLogEntry{
				Time:     s.Clock,
				Message:  fmt.Sprintf("Machine %d repaired", m.ID),
				Severity: SeveritySuccess,
			})
			s.record(trace.KindRepairDone, m.ID, "")
			logrus.Debugf("[t=%07.1f] machine %d repaired", s.Clock, m.ID)
		}
	case RepairmanOtherJob:
		s.Metrics.TimeOtherJobs += delta
		r.OtherJobProgress += delta
		if r.OtherJobProgress >= r.OtherJobDuration {
			r.OtherJobProgress = 0
			r.OtherJobDuration = s.nextOtherJobDuration()
			s.Metrics.JobsCompleted++

			*out = append(*out, EventLogEntry{
				Time:     s.Clock,
				Message:  "Repairman finished a background job",
				Severity: SeverityInfo,
			})
			s.record(trace.KindJobDone, -1, "")
		}
	case RepairmanIdle:
	}

	// Dequeue check: repair work always preempts background work, never the
	// other way round. The queue is served strictly FIFO.
	if s.Queue.Len() > 0 && r.State != RepairmanRepairing {
		id, err := s.Queue.DequeueHead()
		if err != nil {
			// Unreachable given the Len check above.
			logrus.Errorf("repairman dequeue: %v", err)
			return
		}
		m := s.Machines[id]
		prior := r.State
		r.ActiveMachine = m
		r.State = RepairmanRepairing
		m.RepairProgress = 0

		if prior == RepairmanOtherJob {
			// The in-progress background job is discarded, not resumed.
			r.OtherJobProgress = 0
			s.Metrics.Preemptions++
			*out = append(*out, EventLogEntry{
				Time:     s.Clock,
				Message:  fmt.Sprintf("Repairman preempted: fixing machine %d", m.ID),
				Severity: SeverityWarning,
			})
			s.record(trace.KindPreemption, m.ID, "")
		} else {
			*out = append(*out, EventLogEntry{
				Time:     s.Clock,
				Message:  fmt.Sprintf("Repairman fixing machine %d", m.ID),
				Severity: SeverityInfo,
			})
		}
		s.record(trace.KindRepairStart, m.ID, "")
		logrus.Debugf("[t=%07.1f] repairman fixing machine %d (was %s)", s.Clock, m.ID, prior)
	}

	// Idle fallback: with nothing to repair, start a fresh background job.
	if r.State == RepairmanIdle {
		r.State = RepairmanOtherJob
		r.OtherJobProgress = 0
		r.OtherJobDuration = s.nextOtherJobDuration()
	}
}

// ForceBreakdown breaks a machine on external demand (e.g. a click in the
// presentation layer). Accepted only while the machine is Working; a Broken
// machine is a no-op. Out-of-range ids fail with ErrInvalidMachineID and
// leave the state unchanged. Emitted entries go to the event log.
func (s *Simulator) ForceBreakdown(id int) error {
	if id < 0 || id >= len(s.Machines) {
		return fmt.Errorf("force breakdown: %w: %d", ErrInvalidMachineID, id)
	}
	m := s.Machines[id]
	if m.State == MachineBroken {
		return nil
	}

	var events []EventLogEntry
	s.breakMachine(m, &events)
	for _, e := range events {
		s.Log.Append(e)
	}
	return nil
}

// Pause stops future Advance calls from having any effect. In-flight state
// is unaffected: there is no concurrent execution to interrupt.
func (s *Simulator) Pause() {
	s.paused = true
}

// Resume re-enables Advance after a Pause.
func (s *Simulator) Resume() {
	s.paused = false
}

// Paused reports whether the simulation is paused.
func (s *Simulator) Paused() bool {
	return s.paused
}

// Reset atomically discards the aggregate and rebuilds it from the original
// configuration. A non-nil reseed replaces the seed; the attached trace, if
// any, is carried over.
func (s *Simulator) Reset(reseed *int64) error {
	cfg := s.cfg
	if reseed != nil {
		cfg.Seed = *reseed
	}
	fresh, err := NewSimulator(cfg)
	if err != nil {
		return err
	}
	fresh.trace = s.trace
	*s = *fresh
	return nil
}

// Run drives the simulation headlessly with fixed-size ticks until the
// clock reaches horizon. The CLI uses it; interactive drivers call Advance
// directly at their own cadence.
func (s *Simulator) Run(horizon, step float64) error {
	if step <= 0 {
		return fmt.Errorf("run: %w: step must be > 0, got %v", ErrInvalidConfig, step)
	}
	if horizon < 0 {
		return fmt.Errorf("run: %w: horizon must be >= 0, got %v", ErrInvalidConfig, horizon)
	}
	logrus.Infof("[t=%07.1f] simulation started (horizon %.1f, step %.2f)", s.Clock, horizon, step)
	for s.Clock < horizon && !s.paused {
		if _, err := s.Advance(step); err != nil {
			return err
		}
	}
	logrus.Infof("[t=%07.1f] simulation ended", s.Clock)
	return nil
}
