// Package sim provides the discrete-time simulation core for a multi-elevator building.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - building.go: BuildingState, Elevator, Floor, ElevatorCall and the dispatch entry points
//     (initialize, call submission, enable/disable)
//   - engine.go: the per-tick state machine (doors open → moving → idle) and call-queue drain
//   - cost.go: the dispatcher cost heuristic and best-elevator selection
//   - simulator.go: the batch driver (event queue of timed calls/toggles + tick loop)
//
// # Architecture
//
// Every transition takes a BuildingState and returns a new one. The argument is never
// mutated; transitions deep-copy before editing (see BuildingState.Clone). Elevators are
// stored as Optional entries; absent entries are passed through every transition unchanged.
//
// Sub-packages:
//   - sim/trace/: dispatch decision records (pure data, no dependency on sim/)
//   - sim/workload/: random call generation and scripted YAML scenarios
//   - sim/controller/: single-writer mailbox serializing concurrent callers onto one Engine
//
// # Randomness
//
// All stochastic behavior (passenger demand, random calls) draws from a PartitionedRNG
// derived from a SimulationKey. Two runs with the same key and configuration produce
// identical state sequences.
package sim
