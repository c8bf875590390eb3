package state

// EngineState represents the current state of the engine loop
type EngineState int

const (
	StateRunning EngineState = iota
	StatePaused
	StateStopping
)

// String returns the string representation of the engine state
func (s EngineState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}
