package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivokostovski/elevator-exercise/sim"
)

// Scenario is a scripted sequence of timed inputs, loaded from YAML:
//
//	events:
//	  - at_ms: 0
//	    call: {floor: 3, direction: up}
//	  - at_ms: 4000
//	    disable: elevator-2
//	  - at_ms: 60000
//	    enable: elevator-2
type Scenario struct {
	Events []ScenarioEvent `yaml:"events"`
}

// ScenarioEvent is one scripted input. Exactly one of Call, Disable or Enable is set.
type ScenarioEvent struct {
	AtMs    int64     `yaml:"at_ms"`
	Call    *CallSpec `yaml:"call,omitempty"`
	Disable string    `yaml:"disable,omitempty"`
	Enable  string    `yaml:"enable,omitempty"`
}

// CallSpec describes a scripted hall call. Floors are not range-checked.
type CallSpec struct {
	Floor     int    `yaml:"floor"`
	Direction string `yaml:"direction"`
}

// LoadScenario reads and validates a YAML scenario with strict field checking.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that each event has a non-negative time and exactly one action, and
// that call directions are up or down.
func (s *Scenario) Validate() error {
	for i, ev := range s.Events {
		if ev.AtMs < 0 {
			return fmt.Errorf("event %d: at_ms must be non-negative, got %d", i, ev.AtMs)
		}
		actions := 0
		if ev.Call != nil {
			actions++
		}
		if ev.Disable != "" {
			actions++
		}
		if ev.Enable != "" {
			actions++
		}
		if actions != 1 {
			return fmt.Errorf("event %d: expected exactly one of call, disable, enable; got %d", i, actions)
		}
		if ev.Call != nil {
			d, err := sim.ParseDirection(ev.Call.Direction)
			if err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			if d == sim.DirectionIdle {
				return fmt.Errorf("event %d: call direction must be up or down", i)
			}
		}
	}
	return nil
}

// SimEvents converts the scenario into simulator events, in file order. The scenario must
// have passed Validate.
func (s *Scenario) SimEvents() []sim.Event {
	events := make([]sim.Event, 0, len(s.Events))
	for _, ev := range s.Events {
		switch {
		case ev.Call != nil:
			d, _ := sim.ParseDirection(ev.Call.Direction)
			events = append(events, sim.NewCallEvent(ev.AtMs, ev.Call.Floor, d))
		case ev.Disable != "":
			events = append(events, sim.NewToggleEvent(ev.AtMs, ev.Disable, true))
		case ev.Enable != "":
			events = append(events, sim.NewToggleEvent(ev.AtMs, ev.Enable, false))
		}
	}
	return events
}
