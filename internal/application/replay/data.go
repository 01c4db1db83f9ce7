package replay

import (
	"fmt"

	"github.com/younwookim/escape/internal/application/system"
)

// Version of the replay file format
const Version = "2.0"

// Event kinds
const (
	KindPointer = "p"
	KindKey     = "k"
)

// EventRecord is one recorded input event
type EventRecord struct {
	F    int     `json:"f"`            // Frame number
	Kind string  `json:"t"`            // KindPointer or KindKey
	X    float64 `json:"x,omitempty"`  // Canvas x, origin bottom-left
	Y    float64 `json:"y,omitempty"`
	B    int     `json:"b,omitempty"`  // Mouse button
	Key  string  `json:"k,omitempty"`  // Key symbol name
	To   string  `json:"to,omitempty"` // Scene after the event, set when a rule fired
}

// ReplayData contains everything needed to replay a session
type ReplayData struct {
	Version    string        `json:"version"`
	Session    string        `json:"session"`
	StartScene string        `json:"startScene"`
	StartTime  string        `json:"startTime"`
	Frames     int           `json:"frames"`
	Events     []EventRecord `json:"events"`
	FinalScene string        `json:"finalScene,omitempty"`
	Keys       int           `json:"keys"`
}

// Encode converts an input event to its record
func Encode(ev system.Event) (EventRecord, error) {
	switch e := ev.(type) {
	case system.PointerPressed:
		return EventRecord{F: e.Frame, Kind: KindPointer, X: e.X, Y: e.Y, B: int(e.Button)}, nil
	case system.KeyPressed:
		return EventRecord{F: e.Frame, Kind: KindKey, Key: e.Symbol.String()}, nil
	default:
		return EventRecord{}, fmt.Errorf("unsupported event %T", ev)
	}
}

// Decode converts a record back to an input event
func Decode(rec EventRecord) (system.Event, error) {
	switch rec.Kind {
	case KindPointer:
		return system.PointerPressed{Frame: rec.F, X: rec.X, Y: rec.Y, Button: system.MouseButton(rec.B)}, nil
	case KindKey:
		sym, err := system.ParseKeySymbol(rec.Key)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", rec.F, err)
		}
		return system.KeyPressed{Frame: rec.F, Symbol: sym}, nil
	default:
		return nil, fmt.Errorf("frame %d: unknown event kind %q", rec.F, rec.Kind)
	}
}
