// Package explore provides the screen where the player walks the rooms.
package explore

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/replay"
	"github.com/younwookim/escape/internal/application/screen"
	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/infrastructure/render"
)

var colorHotspot = color.RGBA{255, 64, 64, 200}

const hotspotMarker = 8.0

// Options configures recording and playback
type Options struct {
	RecordPath   string             // Record input to this file, empty disables recording
	Replay       *replay.ReplayData // Drive the screen from a recording instead of live input
	ShowHotspots bool               // Start with the hotspot overlay on
}

// Explore hosts the navigator and feeds it input every tick
type Explore struct {
	nav      *system.Navigator
	router   *system.InputRouter
	input    *system.InputSystem
	renderer *render.Renderer
	logger   *zap.Logger
	screenW  int
	screenH  int
	frame    int

	showHotspots bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
	saved          bool

	// Playback
	replayer *replay.Replayer
}

// New creates the explore screen
func New(nav *system.Navigator, screenW, screenH int, logger *zap.Logger, opts Options) *Explore {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Explore{
		nav:            nav,
		router:         system.NewInputRouter(nav),
		input:          system.NewInputSystem(screenH),
		renderer:       render.NewRenderer(screenH),
		logger:         logger,
		screenW:        screenW,
		screenH:        screenH,
		showHotspots:   opts.ShowHotspots,
		recordFilename: opts.RecordPath,
	}

	if opts.Replay != nil {
		e.replayer = replay.NewReplayer(*opts.Replay)
		if start := e.replayer.StartScene(); start != "" {
			if err := nav.Jump(start); err != nil {
				logger.Warn("replay start scene", zap.Error(err))
			}
		}
		logger.Info("Replay enabled",
			zap.String("session", opts.Replay.Session),
			zap.Int("frames", opts.Replay.Frames),
			zap.Int("events", len(opts.Replay.Events)),
		)
	}

	if opts.RecordPath != "" {
		e.recorder = replay.NewRecorder(nav.ActiveID())
		logger.Info("Recording enabled",
			zap.String("file", opts.RecordPath),
			zap.String("session", e.recorder.Session()),
		)
	}

	return e
}

// Update advances one tick (implements screen.Screen)
func (e *Explore) Update(_ float64) (screen.Screen, error) {
	events, err := e.events()
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		out := e.router.Dispatch(ev)
		if e.recorder != nil {
			if err := e.recorder.Record(ev, out); err != nil {
				e.logger.Warn("record event", zap.Error(err))
			}
		}
	}
	if e.recorder != nil {
		e.recorder.Tick(e.frame)
	}
	e.frame++

	// Auto-save once the player escapes
	if e.nav.State().Terminal() && !e.saved {
		e.saveRecording()
	}

	return nil, nil
}

func (e *Explore) events() ([]system.Event, error) {
	if e.replayer != nil {
		events, ok, err := e.replayer.Next()
		if err != nil {
			return nil, fmt.Errorf("replay frame %d: %w", e.frame, err)
		}
		if ok {
			return events, nil
		}
		e.logger.Info("Replay finished, switching to live input", zap.Int("frame", e.frame))
		e.replayer = nil
	}

	// F1: hotspot overlay, F5: save recording now
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.showHotspots = !e.showHotspots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		e.saveRecording()
	}
	return e.input.Poll(e.frame), nil
}

// saveRecording saves the current recording to file
func (e *Explore) saveRecording() {
	if e.recorder == nil {
		return
	}

	filename := e.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	e.recorder.Finish(e.nav.ActiveID(), e.nav.Inventory().Count())
	if err := e.recorder.Save(filename); err != nil {
		e.logger.Warn("Failed to save recording", zap.Error(err))
		return
	}
	e.saved = true
	e.logger.Info("Recording saved",
		zap.String("file", filename),
		zap.Int("events", e.recorder.EventCount()),
	)
}

// Draw renders the active scene (implements screen.Screen)
func (e *Explore) Draw(target *ebiten.Image) {
	e.renderer.Begin(target)
	e.nav.Render(e.renderer)

	if e.showHotspots {
		e.drawHotspots(target)
	}
}

func (e *Explore) drawHotspots(target *ebiten.Image) {
	for _, h := range e.nav.Hotspots() {
		x, y := render.Placement(h.X, h.Y, 1, 0, e.screenH)
		ebitenutil.DrawRect(target, x-hotspotMarker/2, y-hotspotMarker/2, hotspotMarker, hotspotMarker, colorHotspot)
	}

	text := fmt.Sprintf("%s | keys %d | %s", e.nav.ActiveID(), e.nav.Inventory().Count(), e.nav.State())
	ebitenutil.DebugPrint(target, text)
}

// OnEnter is called when entering this screen
func (e *Explore) OnEnter() {
	e.logger.Info("Exploring", zap.String("scene", string(e.nav.ActiveID())))
}

// OnExit is called when leaving this screen
func (e *Explore) OnExit() {
	if !e.saved {
		e.saveRecording()
	}
}

// Frame returns the number of ticks processed
func (e *Explore) Frame() int {
	return e.frame
}

// Replaying reports whether input still comes from a recording
func (e *Explore) Replaying() bool {
	return e.replayer != nil
}

// Layout returns the canvas dimensions
func (e *Explore) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenW, e.screenH
}
