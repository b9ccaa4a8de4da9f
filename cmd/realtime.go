package cmd

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ivokostovski/elevator-exercise/sim"
	"github.com/ivokostovski/elevator-exercise/sim/controller"
	"github.com/ivokostovski/elevator-exercise/sim/workload"
)

// operatorCommand is one parsed line of realtime input.
type operatorCommand struct {
	Kind       string // call, disable, enable, status, quit
	Floor      int
	Direction  sim.Direction
	ElevatorID string
}

// parseCommand parses "call <floor> <up|down>", "disable <id>", "enable <id>",
// "status" and "quit".
func parseCommand(line string) (operatorCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return operatorCommand{}, fmt.Errorf("empty command")
	}
	kind := strings.ToLower(fields[0])
	switch kind {
	case "call":
		if len(fields) != 3 {
			return operatorCommand{}, fmt.Errorf("usage: call <floor> <up|down>")
		}
		floor, err := strconv.Atoi(fields[1])
		if err != nil {
			return operatorCommand{}, fmt.Errorf("invalid floor %q: %w", fields[1], err)
		}
		dir, err := sim.ParseDirection(fields[2])
		if err != nil {
			return operatorCommand{}, err
		}
		if dir == sim.DirectionIdle {
			return operatorCommand{}, fmt.Errorf("call direction must be up or down")
		}
		return operatorCommand{Kind: kind, Floor: floor, Direction: dir}, nil
	case "disable", "enable":
		if len(fields) != 2 {
			return operatorCommand{}, fmt.Errorf("usage: %s <elevator-id>", kind)
		}
		return operatorCommand{Kind: kind, ElevatorID: fields[1]}, nil
	case "status", "quit":
		return operatorCommand{Kind: kind}, nil
	default:
		return operatorCommand{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

// readCommands forwards parsed lines from in until EOF or ctx is done. Bad lines are
// logged and skipped.
func readCommands(ctx context.Context, in io.Reader, out chan<- operatorCommand) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			logrus.Warnf("ignoring input: %v", err)
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// runRealtime drives a controller from wall-clock timers: the tick interval, random
// call gaps and operator input all run in real time. Scripted scenario events fire when
// the simulated clock reaches them. Returns the final state once the horizon is
// reached, the operator quits or ctx is cancelled.
func runRealtime(ctx context.Context, engine *sim.Engine, scenario *workload.Scenario, in io.Reader, out io.Writer) (sim.BuildingState, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := controller.Start(ctx, engine, engine.NewBuilding())
	state, err := c.Snapshot(ctx)
	if err != nil {
		c.Stop()
		return state, fmt.Errorf("starting controller: %w", err)
	}

	commands := make(chan operatorCommand)
	if in != nil {
		go readCommands(ctx, in, commands)
	}

	state = realtimeLoop(ctx, c, engine, scenario, commands, out, state)
	c.Stop()

	// The owner goroutine has exited; the engine is ours again.
	engine.Metrics.SimEndedTime = min(engine.Clock, simulationHorizon)
	logrus.Infof("[clock %08dms] Realtime run ended, %d calls pending", engine.Clock, len(state.ElevatorCallQueue))
	return state, nil
}

// realtimeLoop multiplexes timers and operator input until the run ends. It returns the
// last state the controller reported.
func realtimeLoop(ctx context.Context, c *controller.Controller, engine *sim.Engine, scenario *workload.Scenario,
	commands <-chan operatorCommand, out io.Writer, state sim.BuildingState) sim.BuildingState {
	tickInterval := engine.Config.TickInterval

	var scripted []sim.Event
	if scenario != nil {
		scripted = scenario.SimEvents()
		slices.SortStableFunc(scripted, func(a, b sim.Event) int { return cmp.Compare(a.Timestamp(), b.Timestamp()) })
	}

	// The generator's RNG stream is only touched from this goroutine.
	var callTimer <-chan time.Time
	var gen *workload.CallGenerator
	if randomCalls {
		gen = newCallGenerator(engine)
		callTimer = time.After(time.Duration(gen.NextInterval()) * time.Millisecond)
	}

	ticker := time.NewTicker(time.Duration(tickInterval) * time.Millisecond)
	defer ticker.Stop()

	var ticks int
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("realtime run interrupted: %v", ctx.Err())
			return state

		case <-ticker.C:
			clock, err := c.Clock(ctx)
			if err != nil {
				return state
			}
			for len(scripted) > 0 && scripted[0].Timestamp() <= clock {
				if err := applyEvent(ctx, c, scripted[0]); err != nil {
					return state
				}
				scripted = scripted[1:]
			}
			next, err := c.Tick(ctx)
			if err != nil {
				return state
			}
			state = next
			ticks++
			clock += tickInterval
			if renderEvery > 0 && ticks%renderEvery == 0 {
				renderBuilding(out, clock, state)
			}
			if clock >= simulationHorizon {
				return state
			}

		case <-callTimer:
			if floor, dir, ok := gen.NextCall(); ok {
				next, err := c.SubmitCall(ctx, floor, dir)
				if err != nil {
					return state
				}
				state = next
			}
			callTimer = time.After(time.Duration(gen.NextInterval()) * time.Millisecond)

		case cmd := <-commands:
			if cmd.Kind == "quit" {
				return state
			}
			next, err := applyCommand(ctx, c, cmd)
			if err != nil {
				return state
			}
			state = next
			if cmd.Kind == "status" {
				clock, err := c.Clock(ctx)
				if err != nil {
					return state
				}
				renderBuilding(out, clock, state)
			}
		}
	}
}

// applyCommand executes one operator command and returns the resulting state.
func applyCommand(ctx context.Context, c *controller.Controller, cmd operatorCommand) (sim.BuildingState, error) {
	switch cmd.Kind {
	case "call":
		return c.SubmitCall(ctx, cmd.Floor, cmd.Direction)
	case "disable":
		return c.SetElevatorDisabled(ctx, cmd.ElevatorID, true)
	case "enable":
		return c.SetElevatorDisabled(ctx, cmd.ElevatorID, false)
	default:
		return c.Snapshot(ctx)
	}
}

// applyEvent routes a scripted event through the controller.
func applyEvent(ctx context.Context, c *controller.Controller, ev sim.Event) error {
	var err error
	switch e := ev.(type) {
	case *sim.CallEvent:
		_, err = c.SubmitCall(ctx, e.Floor, e.Direction)
	case *sim.ToggleEvent:
		_, err = c.SetElevatorDisabled(ctx, e.ElevatorID, e.Disabled)
	default:
		logrus.Warnf("realtime: unsupported event %T", ev)
	}
	return err
}
