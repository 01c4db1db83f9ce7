package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/domain/entity"
)

// Recorder collects input events for replay. Only frames with input are stored.
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a session starting on the given scene
func NewRecorder(start entity.SceneID) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    Version,
			Session:    uuid.New().String(),
			StartScene: string(start),
			StartTime:  time.Now().Format(time.RFC3339),
			Events:     make([]EventRecord, 0, 64),
		},
		recording: true,
	}
}

// Record stores an event and what it did
func (r *Recorder) Record(ev system.Event, out system.Outcome) error {
	if !r.recording {
		return nil
	}
	rec, err := Encode(ev)
	if err != nil {
		return err
	}
	if out.Fired {
		rec.To = string(out.To)
	}
	r.data.Events = append(r.data.Events, rec)
	return nil
}

// Tick marks the frame as elapsed
func (r *Recorder) Tick(frame int) {
	if r.recording && frame+1 > r.data.Frames {
		r.data.Frames = frame + 1
	}
}

// Finish stores the final state of the session
func (r *Recorder) Finish(final entity.SceneID, keys int) {
	r.data.FinalScene = string(final)
	r.data.Keys = keys
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Events) == 0 {
		return fmt.Errorf("no events to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// EventCount returns the number of recorded events
func (r *Recorder) EventCount() int {
	return len(r.data.Events)
}

// Session returns the session id
func (r *Recorder) Session() string {
	return r.data.Session
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
