package system

import (
	"fmt"
	"strings"
)

// MouseButton identifies the pressed pointer button
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// KeySymbol is a game-level key, independent of the keyboard layout
type KeySymbol int

const (
	SymbolNone KeySymbol = iota
	SymbolLeft
	SymbolRight
	SymbolUp
	SymbolDown
	SymbolBack    // return from a close-up to its room
	SymbolRestart // back to the title screen
)

var symbolNames = map[KeySymbol]string{
	SymbolLeft:    "left",
	SymbolRight:   "right",
	SymbolUp:      "up",
	SymbolDown:    "down",
	SymbolBack:    "back",
	SymbolRestart: "restart",
}

func (s KeySymbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "none"
}

// ParseKeySymbol converts a rule file key name to a KeySymbol
func ParseKeySymbol(name string) (KeySymbol, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for sym, n := range symbolNames {
		if n == name {
			return sym, nil
		}
	}
	return SymbolNone, fmt.Errorf("unknown key symbol %q", name)
}

// Event is raw input delivered to the InputRouter
type Event interface {
	isEvent()
	// FrameIndex is the tick the event was captured on
	FrameIndex() int
}

// PointerPressed is a click at canvas coordinates (origin bottom-left)
type PointerPressed struct {
	Frame  int
	X, Y   float64
	Button MouseButton
}

func (PointerPressed) isEvent() {}

func (e PointerPressed) FrameIndex() int { return e.Frame }

// KeyPressed is a key press already mapped to a game symbol
type KeyPressed struct {
	Frame  int
	Symbol KeySymbol
}

func (KeyPressed) isEvent() {}

func (e KeyPressed) FrameIndex() int { return e.Frame }
