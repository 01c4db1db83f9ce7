// Package screen defines the Screen interface for top-level game screens.
//
// A screen owns one mode of the program (exploring the rooms, playing back a
// recording) and handles its own update logic and rendering.
package screen

import "github.com/hajimehoshi/ebiten/v2"

// Screen is a top-level game mode.
//
// The game loop delegates Update and Draw calls to the current screen.
// Screen transitions are handled by returning a new Screen from Update.
type Screen interface {
	// Update advances the screen by one tick.
	// Returns the next screen if a transition is needed, nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next Screen, err error)

	// Draw renders the screen.
	Draw(target *ebiten.Image)

	// OnEnter is called when the screen becomes current.
	OnEnter()

	// OnExit is called when the screen is left or the game stops.
	OnExit()
}
