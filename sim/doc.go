// Package sim provides the core discrete-event simulation engine for the
// shop floor: machines that produce parts and periodically break down, a
// single repairman that preempts background work to serve a FIFO repair
// queue, and a tick-driven stepper that advances the whole aggregate.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - machine.go: Machine lifecycle (Working → Broken → Working) and the
//     breakdown-before-completion transition rules
//   - repairman.go: Repairman states and the fixed per-tick arbitration
//     order (repair advance, other-job advance, preemptive dequeue, idle
//     fallback)
//   - simulator.go: the aggregate state, Advance, ForceBreakdown, Snapshot,
//     Reset and the headless Run loop
//
// The simulation core never blocks: each Advance call runs to completion
// synchronously over a single consistent view of the aggregate. An external
// driver (the CLI in cmd/, or a rendering layer) owns wall-clock timing and
// translates it into Advance deltas; it reads state only through Snapshot.
//
// Randomness is injected through a seeded PartitionedRNG (rng.go), so two
// simulators built from the same Config and fed the same delta sequence
// produce identical states and event logs.
package sim
