package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemMachines is the RNG subsystem for machine part durations and
	// time-to-failure intervals.
	SubsystemMachines = "machines"

	// SubsystemRepairman is the RNG partition reserved for the repairman.
	// The reference shop uses a fixed background job length, so nothing
	// draws from it yet; a stochastic job model can adopt it without
	// perturbing the machine failure sequence.
	SubsystemRepairman = "repairman"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Variate Samplers ===

// minExponential keeps exponential draws strictly positive so sampled
// intervals are always usable as tick denominators.
const minExponential = 1e-9

// NormalSampler produces floor-clamped Gaussian durations.
// Samples below 1 are clamped up so part durations and failure intervals
// can never reach zero or go negative.
type NormalSampler struct {
	Mean  float64
	Sigma float64
}

// Sample draws a duration from the injected RNG. Always >= 1.
func (s NormalSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.Sigma + s.Mean
	if val < 1 {
		return 1
	}
	return val
}

// ExponentialSampler produces exponentially-distributed intervals with the
// given mean. Used for machine time-to-failure (mean = MTTF).
type ExponentialSampler struct {
	Mean float64
}

// Sample draws an interval from the injected RNG. Always > 0.
func (s ExponentialSampler) Sample(rng *rand.Rand) float64 {
	val := rng.ExpFloat64() * s.Mean
	if val < minExponential {
		return minExponential
	}
	return val
}
