package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// and schedule MUST produce bit-for-bit identical traces.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

const (
	// SubsystemEnvironment is the RNG subsystem feeding the environment
	// model's sensor jitter. Uses the master seed directly so --seed keeps
	// producing the same environment trajectory as more stochastic
	// consumers are added.
	SubsystemEnvironment = "environment"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, so drawing from one subsystem never shifts another's sequence.
//
// Derivation:
//   - SubsystemEnvironment uses the master seed directly.
//   - Any other subsystem uses masterSeed XOR fnv1a64(subsystemName).
//
// The environment is the only stochastic consumer today; the name-derived
// branch and Key exist so later consumers (occupancy variation, sensor
// dropout) get isolated sequences without shifting existing ones.
//
// Not safe for concurrent use; the simulation is single-threaded by design.
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

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same cached *rand.Rand.
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemEnvironment {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

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
