package game

// Phase is the lifecycle state of a session
type Phase int

const (
	// PhaseSetup is round 1 with starting cards and names still editable
	PhaseSetup Phase = iota
	// PhaseInProgress is any round after the first; setup is locked
	PhaseInProgress
	// PhaseGameOver is terminal until the session is reset
	PhaseGameOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseInProgress:
		return "In Progress"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether a session may move from p to next.
// Reset may return to Setup from anywhere; otherwise phases only move forward.
func (p Phase) CanTransition(next Phase) bool {
	switch next {
	case PhaseSetup:
		return true
	case PhaseInProgress:
		return p == PhaseSetup
	case PhaseGameOver:
		return p == PhaseSetup || p == PhaseInProgress
	default:
		return false
	}
}

// SetupLocked reports whether starting cards and names are frozen
func (p Phase) SetupLocked() bool {
	return p != PhaseSetup
}

// Playable reports whether bids and results may still be entered
func (p Phase) Playable() bool {
	return p != PhaseGameOver
}
