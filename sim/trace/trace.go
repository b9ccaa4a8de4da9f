package trace

import "github.com/google/uuid"

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures all dispatch and requeue decisions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	RunID      uuid.UUID
	Config     TraceConfig
	Dispatches []DispatchRecord
	Requeues   []RequeueRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording, tagged with a fresh run ID.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		RunID:      uuid.New(),
		Config:     config,
		Dispatches: make([]DispatchRecord, 0),
		Requeues:   make([]RequeueRecord, 0),
	}
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordRequeue appends a requeue record.
func (st *SimulationTrace) RecordRequeue(record RequeueRecord) {
	st.Requeues = append(st.Requeues, record)
}
