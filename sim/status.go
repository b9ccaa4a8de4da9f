package sim

// Status classifies what an elevator is doing. The engine sets it directly on every
// transition; display code derives class, icon, label and color from it.
type Status string

const (
	StatusIdle           Status = "idle"
	StatusMovingUp       Status = "moving-up"
	StatusMovingDown     Status = "moving-down"
	StatusLoading        Status = "loading"
	StatusUnloading      Status = "unloading"
	StatusArrivedOpening Status = "arrived-opening"
	StatusDeparting      Status = "departing" // doors just closed, travel not yet started
	StatusDisabled       Status = "disabled"
)

// Elevator palette, as hex colors.
const (
	ColorIdle       = "#6c757d"
	ColorMovingUp   = "#28a745"
	ColorMovingDown = "#dc3545"
	ColorLoading    = "#ffc107"
	ColorUnloading  = "#fd7e14"
	ColorDisabled   = "#6c757d"
)

// movingStatus maps a travel direction onto a status.
func movingStatus(d Direction) Status {
	switch d {
	case DirectionUp:
		return StatusMovingUp
	case DirectionDown:
		return StatusMovingDown
	default:
		return StatusIdle
	}
}

// Class returns the CSS-style class name for the status.
func (s Status) Class() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusMovingUp:
		return "moving-up"
	case StatusMovingDown:
		return "moving-down"
	case StatusLoading, StatusUnloading:
		return "loading"
	case StatusIdle:
		return "idle"
	default:
		return "active"
	}
}

// Icon returns a single-glyph icon for the status.
func (s Status) Icon() string {
	switch s {
	case StatusDisabled:
		return "🚫"
	case StatusMovingUp:
		return "⬆️"
	case StatusMovingDown:
		return "⬇️"
	case StatusLoading, StatusUnloading:
		return "⏳"
	case StatusIdle:
		return "💤"
	default:
		return "✅"
	}
}

// Label returns a short human-readable label.
func (s Status) Label() string {
	switch s {
	case StatusDisabled:
		return "Disabled"
	case StatusMovingUp:
		return "Moving Up"
	case StatusMovingDown:
		return "Moving Down"
	case StatusLoading, StatusUnloading:
		return "Loading"
	case StatusIdle:
		return "Idle"
	default:
		return "Active"
	}
}

// ElevatorColor picks the display color from door state and direction.
func ElevatorColor(e Elevator) string {
	if e.IsDisabled {
		return ColorDisabled
	}
	if e.DoorStatus == DoorOpen {
		if e.LoadingUnloadingRemainingTime > 0 {
			return ColorLoading
		}
		return ColorUnloading
	}
	switch e.Direction {
	case DirectionUp:
		return ColorMovingUp
	case DirectionDown:
		return ColorMovingDown
	default:
		return ColorIdle
	}
}
