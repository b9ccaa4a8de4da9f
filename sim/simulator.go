// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// scheduledEvent pairs an event with its insertion order so events sharing a timestamp
// fire first-in, first-out.
type scheduledEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by timestamp, then insertion.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the batch driver: it owns the building state, fires scheduled events as
// simulated time reaches them, and ticks the engine at a fixed interval up to the horizon.
type Simulator struct {
	Engine  *Engine
	State   BuildingState
	Horizon int64 // simulated ms; the run stops once the clock reaches it
	// EventQueue has all pending inputs (calls, toggles)
	EventQueue EventQueue
	// OnTick, if set, observes the state after every tick. It must treat the state as read-only.
	OnTick func(clock int64, state BuildingState)
	seq    int64
}

// NewSimulator creates a Simulator with a freshly initialized building.
func NewSimulator(engine *Engine, horizon int64) *Simulator {
	return &Simulator{
		Engine:     engine,
		State:      engine.NewBuilding(),
		Horizon:    horizon,
		EventQueue: make(EventQueue, 0),
	}
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, scheduledEvent{ev: ev, seq: sim.seq})
	sim.seq++
}

// Run fires due events and ticks until the clock reaches the horizon.
func (sim *Simulator) Run() {
	for sim.Engine.Clock < sim.Horizon {
		sim.fireDueEvents()
		sim.State = sim.Engine.Tick(sim.State)
		if sim.OnTick != nil {
			sim.OnTick(sim.Engine.Clock, sim.State)
		}
	}
	sim.Engine.metrics().SimEndedTime = min(sim.Engine.Clock, sim.Horizon)
	logrus.Infof("[clock %08dms] Simulation ended, %d calls pending", sim.Engine.Clock, len(sim.State.ElevatorCallQueue))
}

// fireDueEvents executes every queued event whose timestamp has been reached.
func (sim *Simulator) fireDueEvents() {
	for len(sim.EventQueue) > 0 && sim.EventQueue[0].ev.Timestamp() <= sim.Engine.Clock {
		ev := heap.Pop(&sim.EventQueue).(scheduledEvent).ev
		logrus.Debugf("[clock %08dms] Executing %T", sim.Engine.Clock, ev)
		ev.Execute(sim)
	}
}
