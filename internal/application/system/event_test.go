package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerPressed(t *testing.T) {
	ev := PointerPressed{Frame: 7, X: 800, Y: 400, Button: ButtonLeft}

	// Test that it implements Event interface
	var e Event = ev
	e.isEvent() // Should not panic

	assert.Equal(t, 7, e.FrameIndex())
	assert.Equal(t, 800.0, ev.X)
	assert.Equal(t, 400.0, ev.Y)
}

func TestKeyPressed(t *testing.T) {
	ev := KeyPressed{Frame: 3, Symbol: SymbolUp}

	var e Event = ev
	e.isEvent()

	assert.Equal(t, 3, e.FrameIndex())
	assert.Equal(t, "up", ev.Symbol.String())
}

func TestParseKeySymbol(t *testing.T) {
	tests := []struct {
		in   string
		want KeySymbol
	}{
		{"left", SymbolLeft},
		{"RIGHT", SymbolRight},
		{" up ", SymbolUp},
		{"down", SymbolDown},
		{"back", SymbolBack},
		{"restart", SymbolRestart},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sym, err := ParseKeySymbol(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sym)
		})
	}

	_, err := ParseKeySymbol("escape")
	assert.Error(t, err)
	assert.Equal(t, "none", SymbolNone.String())
}
