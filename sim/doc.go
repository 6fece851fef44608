// Package sim provides the discrete-event simulation engine for the smart
// classroom controller.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - environment.go: the environment model (CO2, temperature, noise dynamics)
//   - event.go: the three periodic activities that drive the simulation
//   - simulator.go: the event loop, clock, and same-tick ordering
//
// # Architecture
//
// A min-heap event queue orders events by (timestamp, activity priority).
// Three self-rescheduling periodic events share the clock: the environment
// advance consumes the scenario schedule's occupancy and the current
// actuator flags; the monitoring event feeds an environment snapshot to the
// intervention controller, which consults the classifier and fires at most
// one rule; the logging event copies the resulting state into the run
// trace. At equal timestamps the environment always advances first, then
// monitoring, then logging, so the controller never observes a
// partially-updated tick.
//
// Pure-data collaborators live in sub-packages and sibling packages:
//   - sim/trace: run log and intervention records (no dependency on sim)
//   - classifier: the conducive/non-conducive verdict contract and its
//     trained implementations
//   - results: post-run CSV and SQLite persistence
//
// Stochastic behavior flows through an injected, partitioned RNG (rng.go);
// a fixed seed reproduces a run bit for bit.
package sim
