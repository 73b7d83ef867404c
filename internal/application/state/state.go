package state

// GameState identifies the active scene
type GameState int

const (
	StateLoading GameState = iota
	StateMenu
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether the scene graph allows moving from s to next.
// Staying in the same scene is always allowed.
func (s GameState) CanTransition(next GameState) bool {
	if s == next {
		return true
	}
	switch s {
	case StateLoading:
		return next == StateMenu
	case StateMenu:
		return next == StatePlaying
	case StatePlaying:
		return next == StatePaused || next == StateGameOver
	case StatePaused:
		return next == StatePlaying || next == StateMenu
	case StateGameOver:
		return next == StatePlaying || next == StateMenu
	default:
		return false
	}
}
