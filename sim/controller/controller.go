// Package controller serializes access to a building simulation for concurrent callers.
//
// A single goroutine owns the engine and the current BuildingState. Callers submit
// commands over a channel and receive a private copy of the resulting state, so a tick,
// a call submission and a toggle never interleave.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ivokostovski/elevator-exercise/sim"
)

// ErrStopped is returned by every operation once the controller has shut down.
var ErrStopped = errors.New("controller stopped")

// stateCmd runs on the owner goroutine and returns the next state.
type stateCmd struct {
	Exec  func(engine *sim.Engine, state sim.BuildingState) sim.BuildingState
	reply chan sim.BuildingState
}

// Controller is the mailbox in front of one Engine. The zero value is not usable;
// construct with Start.
type Controller struct {
	cmds     chan stateCmd
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Start launches the owner goroutine with initial as the current state. The controller
// stops when ctx is cancelled or Stop is called. The engine must not be used by anyone
// else afterwards.
func Start(ctx context.Context, engine *sim.Engine, initial sim.BuildingState) *Controller {
	c := &Controller{
		cmds: make(chan stateCmd),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go c.run(ctx, engine, initial)
	return c
}

func (c *Controller) run(ctx context.Context, engine *sim.Engine, state sim.BuildingState) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			logrus.Debugf("[clock %08dms] controller: context done: %v", engine.Clock, ctx.Err())
			return
		case <-c.quit:
			logrus.Debugf("[clock %08dms] controller: stopped", engine.Clock)
			return
		case cmd := <-c.cmds:
			state = cmd.Exec(engine, state)
			cmd.reply <- state.Clone()
		}
	}
}

// do sends one command and waits for the resulting snapshot.
func (c *Controller) do(ctx context.Context, exec func(*sim.Engine, sim.BuildingState) sim.BuildingState) (sim.BuildingState, error) {
	cmd := stateCmd{Exec: exec, reply: make(chan sim.BuildingState, 1)}
	select {
	case c.cmds <- cmd:
	case <-c.done:
		return sim.BuildingState{}, ErrStopped
	case <-ctx.Done():
		return sim.BuildingState{}, ctx.Err()
	}
	select {
	case s := <-cmd.reply:
		return s, nil
	case <-ctx.Done():
		return sim.BuildingState{}, ctx.Err()
	}
}

// SubmitCall queues a hall call and returns the updated state.
func (c *Controller) SubmitCall(ctx context.Context, floor int, direction sim.Direction) (sim.BuildingState, error) {
	return c.do(ctx, func(e *sim.Engine, s sim.BuildingState) sim.BuildingState {
		return e.SubmitCall(s, floor, direction)
	})
}

// SetElevatorDisabled enables or disables an elevator and returns the updated state.
func (c *Controller) SetElevatorDisabled(ctx context.Context, elevatorID string, disabled bool) (sim.BuildingState, error) {
	return c.do(ctx, func(e *sim.Engine, s sim.BuildingState) sim.BuildingState {
		return e.SetElevatorDisabled(s, elevatorID, disabled)
	})
}

// Tick advances the simulation by one tick.
func (c *Controller) Tick(ctx context.Context) (sim.BuildingState, error) {
	return c.do(ctx, func(e *sim.Engine, s sim.BuildingState) sim.BuildingState {
		return e.Tick(s)
	})
}

// Snapshot returns a copy of the current state without changing it.
func (c *Controller) Snapshot(ctx context.Context) (sim.BuildingState, error) {
	return c.do(ctx, func(_ *sim.Engine, s sim.BuildingState) sim.BuildingState {
		return s
	})
}

// Clock returns the engine's simulated time.
func (c *Controller) Clock(ctx context.Context) (int64, error) {
	var clock int64
	_, err := c.do(ctx, func(e *sim.Engine, s sim.BuildingState) sim.BuildingState {
		clock = e.Clock
		return s
	})
	return clock, err
}

// Stop shuts the owner goroutine down and waits for it to exit. Safe to call repeatedly.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() { close(c.quit) })
	<-c.done
}

// Done is closed once the owner goroutine has exited.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
