package replay

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

func createTestNavigator(t *testing.T) (*system.Navigator, *system.InputRouter) {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), zap.NewNop())
	require.NoError(t, err)
	return nav, system.NewInputRouter(nav)
}

// session starts the game, walks to the open drawer and takes its key
var session = []system.Event{
	system.PointerPressed{Frame: 3, X: 800, Y: 400, Button: system.ButtonLeft},
	system.PointerPressed{Frame: 10, X: 10, Y: 700, Button: system.ButtonLeft},
	system.PointerPressed{Frame: 12, X: 600, Y: 200, Button: system.ButtonLeft},
	system.PointerPressed{Frame: 20, X: 600, Y: 150, Button: system.ButtonLeft},
	system.PointerPressed{Frame: 30, X: 600, Y: 155, Button: system.ButtonRight},
	system.KeyPressed{Frame: 30, Symbol: system.SymbolBack},
}

func record(t *testing.T) *Recorder {
	t.Helper()
	nav, router := createTestNavigator(t)
	rec := NewRecorder(nav.ActiveID())

	for frame, i := 0, 0; frame <= 40; frame++ {
		for ; i < len(session) && session[i].FrameIndex() == frame; i++ {
			out := router.Dispatch(session[i])
			require.NoError(t, rec.Record(session[i], out))
		}
		rec.Tick(frame)
	}
	rec.Finish(nav.ActiveID(), nav.Inventory().Count())
	return rec
}

func TestEncodeDecode(t *testing.T) {
	for _, ev := range session {
		rec, err := Encode(ev)
		require.NoError(t, err)

		back, err := Decode(rec)
		require.NoError(t, err)
		assert.Equal(t, ev, back)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(EventRecord{F: 1, Kind: "x"})
	assert.ErrorContains(t, err, "unknown event kind")

	_, err = Decode(EventRecord{F: 1, Kind: KindKey, Key: "escape"})
	assert.ErrorContains(t, err, "frame 1")
}

func TestRecorder_Record(t *testing.T) {
	rec := record(t)
	data := rec.GetData()

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "screen_start", data.StartScene)
	assert.Equal(t, 41, data.Frames)
	assert.Equal(t, 6, rec.EventCount())
	assert.Equal(t, "main_scene1", data.FinalScene)
	assert.Equal(t, 1, data.Keys)

	_, err := uuid.Parse(rec.Session())
	assert.NoError(t, err)

	assert.Equal(t, []string{"main_scene1", "", "bedside_table_scene", "open_bedside_table_scene", "open_bedside_table_scene", "main_scene1"},
		[]string{data.Events[0].To, data.Events[1].To, data.Events[2].To, data.Events[3].To, data.Events[4].To, data.Events[5].To})
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("screen_start")
	rec.Stop()

	require.NoError(t, rec.Record(session[0], system.Outcome{}))
	rec.Tick(5)

	assert.False(t, rec.IsRecording())
	assert.Zero(t, rec.EventCount())
	assert.Zero(t, rec.GetData().Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("screen_start")

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorContains(t, err, "no events")
}

func TestRecorder_SaveLoad(t *testing.T) {
	rec := record(t)
	path := filepath.Join(t.TempDir(), GenerateFilename())

	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData(), *data)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReplayer_Next(t *testing.T) {
	r := NewReplayer(record(t).GetData())
	assert.Equal(t, entity.SceneID("screen_start"), r.StartScene())

	var frames [][]system.Event
	for {
		events, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		frames = append(frames, events)
	}

	require.Len(t, frames, 41)
	assert.Empty(t, frames[0])
	assert.Equal(t, []system.Event{session[0]}, frames[3])
	assert.Equal(t, []system.Event{session[4], session[5]}, frames[30])
	assert.True(t, r.Done())
	assert.Equal(t, 41, r.CurrentFrame())

	r.Reset()
	assert.False(t, r.Done())
	assert.Zero(t, r.CurrentFrame())
}

func TestReplayer_DrivesNavigator(t *testing.T) {
	data := record(t).GetData()
	nav, router := createTestNavigator(t)
	r := NewReplayer(data)

	for {
		events, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		router.DispatchAll(events)
	}

	assert.Equal(t, entity.SceneID(data.FinalScene), nav.ActiveID())
	assert.Equal(t, data.Keys, nav.Inventory().Count())
}

func TestVerify(t *testing.T) {
	data := record(t).GetData()

	nav, router := createTestNavigator(t)
	assert.NoError(t, Verify(data, router, nav))

	data.Events[2].Y = 300 // above the bedside band
	nav, router = createTestNavigator(t)
	err := Verify(data, router, nav)
	assert.ErrorIs(t, err, ErrDiverged)
	assert.Contains(t, err.Error(), "event 2")
}

func TestVerify_FinalState(t *testing.T) {
	data := record(t).GetData()
	data.Keys = 2

	nav, router := createTestNavigator(t)
	err := Verify(data, router, nav)

	assert.ErrorIs(t, err, ErrDiverged)
	assert.Contains(t, err.Error(), "keys")
}
