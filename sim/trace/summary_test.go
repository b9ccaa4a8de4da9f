package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalDispatches != 0 || summary.TotalRequeued != 0 {
		t.Error("expected zero counts for nil trace")
	}
	if summary.TargetDistribution == nil {
		t.Error("expected non-nil target distribution")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDispatches != 0 {
		t.Errorf("expected 0 dispatches, got %d", summary.TotalDispatches)
	}
	if summary.UniqueTargets != 0 {
		t.Errorf("expected 0 unique targets, got %d", summary.UniqueTargets)
	}
	if summary.MeanWaitMs != 0 || summary.MaxWaitMs != 0 {
		t.Error("expected 0 wait values")
	}
	if len(summary.TargetDistribution) != 0 {
		t.Error("expected empty target distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with dispatches to two elevators and one evacuation
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordDispatch(DispatchRecord{Clock: 2000, CallTimestamp: 0, ChosenElevator: "elevator-1", ChosenCost: 2})
	st.RecordDispatch(DispatchRecord{Clock: 5000, CallTimestamp: 1000, ChosenElevator: "elevator-2", ChosenCost: 4})
	st.RecordDispatch(DispatchRecord{Clock: 9000, CallTimestamp: 6000, ChosenElevator: "elevator-1", ChosenCost: 0})
	st.RecordRequeue(RequeueRecord{Clock: 100, ElevatorID: "elevator-3", Floors: []int{3, 7}})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts, waits and distribution match
	if summary.TotalDispatches != 3 {
		t.Errorf("expected 3 dispatches, got %d", summary.TotalDispatches)
	}
	if summary.TotalRequeued != 2 {
		t.Errorf("expected 2 requeued calls, got %d", summary.TotalRequeued)
	}
	if summary.UniqueTargets != 2 {
		t.Errorf("expected 2 unique targets, got %d", summary.UniqueTargets)
	}
	if summary.TargetDistribution["elevator-1"] != 2 {
		t.Errorf("expected elevator-1 count 2, got %d", summary.TargetDistribution["elevator-1"])
	}
	if summary.MaxWaitMs != 4000 {
		t.Errorf("expected max wait 4000, got %d", summary.MaxWaitMs)
	}
	if summary.MeanWaitMs != 3000 {
		t.Errorf("expected mean wait 3000, got %f", summary.MeanWaitMs)
	}
	if summary.MeanChosenCost != 2 {
		t.Errorf("expected mean cost 2, got %f", summary.MeanChosenCost)
	}
}
