package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivokostovski/elevator-exercise/sim"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    operatorCommand
		wantErr bool
	}{
		{line: "call 3 up", want: operatorCommand{Kind: "call", Floor: 3, Direction: sim.DirectionUp}},
		{line: "CALL 7 Down", want: operatorCommand{Kind: "call", Floor: 7, Direction: sim.DirectionDown}},
		{line: "disable elevator-2", want: operatorCommand{Kind: "disable", ElevatorID: "elevator-2"}},
		{line: "enable elevator-2", want: operatorCommand{Kind: "enable", ElevatorID: "elevator-2"}},
		{line: "status", want: operatorCommand{Kind: "status"}},
		{line: "quit", want: operatorCommand{Kind: "quit"}},
		{line: "call three up", wantErr: true},
		{line: "call 3 idle", wantErr: true},
		{line: "call 3", wantErr: true},
		{line: "disable", wantErr: true},
		{line: "open-doors", wantErr: true},
		{line: "   ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, err := parseCommand(tc.line)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func fastEngine() *sim.Engine {
	cfg := sim.DefaultConfig()
	cfg.TickInterval = 1
	cfg.FloorMovementTime = 5
	cfg.LoadUnloadTime = 5
	cfg.CallProcessingDelay = 0
	return sim.NewEngine(cfg, sim.NewSimulationKey(3))
}

func TestRunRealtime_StopsAtHorizon(t *testing.T) {
	// GIVEN a 1ms tick and a 30ms horizon without random calls
	freshRunCmd(t)
	randomCalls = false
	simulationHorizon = 30
	engine := fastEngine()

	// WHEN run in realtime
	done := make(chan struct{})
	var final sim.BuildingState
	go func() {
		defer close(done)
		var err error
		final, err = runRealtime(context.Background(), engine, nil, nil, &bytes.Buffer{})
		assert.NoError(t, err)
	}()

	// THEN it returns once the simulated clock reaches the horizon
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("realtime run did not stop at the horizon")
	}
	assert.Equal(t, 30, engine.Metrics.Ticks)
	assert.Equal(t, int64(30), engine.Metrics.SimEndedTime)
	assert.Len(t, final.Elevators, 4)
}

func TestRunRealtime_QuitCommandEndsRun(t *testing.T) {
	freshRunCmd(t)
	randomCalls = false
	simulationHorizon = 1 << 40
	engine := fastEngine()

	in := strings.NewReader("call 5 down\nquit\n")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := runRealtime(context.Background(), engine, nil, in, &bytes.Buffer{})
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("quit did not end the realtime run")
	}
	assert.Equal(t, 1, engine.Metrics.CallsSubmitted)
}

func TestRunRealtime_ContextCancelEndsRun(t *testing.T) {
	freshRunCmd(t)
	randomCalls = false
	simulationHorizon = 1 << 40
	engine := fastEngine()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = runRealtime(ctx, engine, nil, nil, &bytes.Buffer{})
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not end the realtime run")
	}
}
