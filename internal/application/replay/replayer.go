package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/domain/entity"
)

// ErrDiverged reports a replay whose events no longer produce the recorded scenes
var ErrDiverged = errors.New("replay diverged")

// Replayer plays recorded events back frame by frame
type Replayer struct {
	data   ReplayData
	frame  int
	cursor int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the events of the current frame and advances.
// The second result is false once every frame has been played.
func (r *Replayer) Next() ([]system.Event, bool, error) {
	if r.Done() {
		return nil, false, nil
	}

	var events []system.Event
	for r.cursor < len(r.data.Events) && r.data.Events[r.cursor].F <= r.frame {
		ev, err := Decode(r.data.Events[r.cursor])
		if err != nil {
			return nil, false, err
		}
		events = append(events, ev)
		r.cursor++
	}
	r.frame++
	return events, true, nil
}

// Done reports whether playback has reached the end
func (r *Replayer) Done() bool {
	return r.frame >= r.TotalFrames() && r.cursor >= len(r.data.Events)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Frames
}

// StartScene returns the scene the session started on
func (r *Replayer) StartScene() entity.SceneID {
	return entity.SceneID(r.data.StartScene)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.cursor = 0
}

// Verify plays the whole session through the router without rendering and
// checks every recorded transition and the final state.
func Verify(data ReplayData, router *system.InputRouter, nav *system.Navigator) error {
	if data.StartScene != "" {
		if err := nav.Jump(entity.SceneID(data.StartScene)); err != nil {
			return err
		}
	}

	for i, rec := range data.Events {
		ev, err := Decode(rec)
		if err != nil {
			return err
		}
		out := router.Dispatch(ev)

		got := ""
		if out.Fired {
			got = string(out.To)
		}
		if got != rec.To {
			return fmt.Errorf("event %d at frame %d: recorded %q, got %q: %w", i, rec.F, rec.To, got, ErrDiverged)
		}
	}

	if data.FinalScene != "" && string(nav.ActiveID()) != data.FinalScene {
		return fmt.Errorf("final scene: recorded %q, got %q: %w", data.FinalScene, nav.ActiveID(), ErrDiverged)
	}
	if data.FinalScene != "" && nav.Inventory().Count() != data.Keys {
		return fmt.Errorf("keys: recorded %d, got %d: %w", data.Keys, nav.Inventory().Count(), ErrDiverged)
	}
	return nil
}
