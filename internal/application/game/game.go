// Package game provides the main game loop manager that handles Screen transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/escape/internal/application/screen"
)

// Game implements ebiten.Game and manages Screen transitions.
type Game struct {
	current screen.Screen
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial screen.
// The initial screen's OnEnter is called immediately.
func New(initial screen.Screen, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current screen and handles transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current screen.
// Implements ebiten.Game interface.
func (g *Game) Draw(target *ebiten.Image) {
	g.current.Draw(target)
}

// Layout returns the fixed logical canvas size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Close lets the current screen release its resources. Call after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}
