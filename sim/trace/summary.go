package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches    int
	TotalRequeued      int // calls synthesized by disable evacuations
	MeanWaitMs         float64
	MaxWaitMs          int64
	MeanChosenCost     float64
	UniqueTargets      int
	TargetDistribution map[string]int // elevator ID → count of calls dispatched
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TargetDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	for _, r := range st.Requeues {
		summary.TotalRequeued += len(r.Floors)
	}

	summary.TotalDispatches = len(st.Dispatches)
	if len(st.Dispatches) > 0 {
		var totalWait int64
		totalCost := 0.0
		for _, d := range st.Dispatches {
			summary.TargetDistribution[d.ChosenElevator]++
			wait := d.WaitMs()
			totalWait += wait
			if wait > summary.MaxWaitMs {
				summary.MaxWaitMs = wait
			}
			totalCost += d.ChosenCost
		}
		summary.MeanWaitMs = float64(totalWait) / float64(len(st.Dispatches))
		summary.MeanChosenCost = totalCost / float64(len(st.Dispatches))
	}

	summary.UniqueTargets = len(summary.TargetDistribution)

	return summary
}
