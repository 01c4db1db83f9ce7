package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps physical keys to game symbols
var keyBindings = []struct {
	key ebiten.Key
	sym KeySymbol
}{
	{ebiten.KeyArrowLeft, SymbolLeft},
	{ebiten.KeyArrowRight, SymbolRight},
	{ebiten.KeyArrowUp, SymbolUp},
	{ebiten.KeyArrowDown, SymbolDown},
	{ebiten.KeyBackspace, SymbolBack},
	{ebiten.KeySpace, SymbolRestart},
}

var buttonBindings = []struct {
	button ebiten.MouseButton
	mapped MouseButton
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

// InputSystem polls ebiten once per tick and turns presses into events
type InputSystem struct {
	screenH int
}

// NewInputSystem creates an input system for a canvas of the given height
func NewInputSystem(screenH int) *InputSystem {
	return &InputSystem{screenH: screenH}
}

// InputState holds the raw input read in one tick
type InputState struct {
	MouseX, MouseY int // ebiten cursor, origin top-left
	Buttons        []MouseButton
	Keys           []KeySymbol
}

// GetInput reads the presses that started this tick
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{MouseX: mx, MouseY: my}

	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			in.Buttons = append(in.Buttons, b.mapped)
		}
	}
	for _, k := range keyBindings {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Keys = append(in.Keys, k.sym)
		}
	}
	return in
}

// Events converts an input state into events for the given frame.
// Pointer events come first, then keys in binding order.
func (s *InputSystem) Events(in InputState, frame int) []Event {
	var events []Event
	x, y := s.ToCanvas(in.MouseX, in.MouseY)
	for _, b := range in.Buttons {
		events = append(events, PointerPressed{Frame: frame, X: x, Y: y, Button: b})
	}
	for _, k := range in.Keys {
		events = append(events, KeyPressed{Frame: frame, Symbol: k})
	}
	return events
}

// Poll reads input and returns this tick's events
func (s *InputSystem) Poll(frame int) []Event {
	return s.Events(s.GetInput(), frame)
}

// ToCanvas converts a top-left cursor position to bottom-left canvas coordinates
func (s *InputSystem) ToCanvas(cx, cy int) (float64, float64) {
	return float64(cx), float64(s.screenH - 1 - cy)
}
