package state

// GameState is the phase of the game, derived from the active scene
type GameState int

const (
	StateTitle GameState = iota
	StateHowTo
	StatePlaying
	StateEnded
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateHowTo:
		return "HowTo"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further input can change the game
func (s GameState) Terminal() bool {
	return s == StateEnded
}
