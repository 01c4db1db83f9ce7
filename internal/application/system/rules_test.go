package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

func ptr(v float64) *float64 { return &v }

// createTinyGraph has two rooms; "room_a" holds a box and a key
func createTinyGraph(t *testing.T) *SceneGraph {
	t.Helper()
	loader := assets.NewManifestLoader(&config.AssetsConfig{
		Assets: map[string]config.AssetSize{
			"bg.png":  {Width: 1280, Height: 720},
			"box.png": {Width: 100, Height: 100},
			"key.png": {Width: 600, Height: 300},
		},
	})
	cfg := &config.ScenesConfig{
		Start: "room_a",
		Title: "room_a",
		End:   "room_b",
		Scenes: []config.SceneConfig{
			{
				ID:         "room_a",
				Background: config.SpriteConfig{Asset: "bg.png"},
				Items: []config.ItemConfig{
					{Name: "key", Asset: "key.png", X: 10, Y: 10, Scale: 0.1, KeyLayer: true},
					{Name: "box", Asset: "box.png", X: 0, Y: 0, Scale: 1},
				},
			},
			{ID: "room_b", Background: config.SpriteConfig{Asset: "bg.png"}},
		},
	}
	g, err := LoadSceneGraph(cfg, loader)
	require.NoError(t, err)
	return g
}

func TestBuildRules_Shipped(t *testing.T) {
	cfg := loadTestConfig(t)
	nav := createTestNavigator(t)

	rs, err := BuildRules(cfg.Rules, nav.Graph())
	require.NoError(t, err)

	assert.Len(t, rs.Pointer, len(cfg.Rules.Pointer))
	assert.Len(t, rs.Keys, len(cfg.Rules.Keys))
}

func TestBuildRules_Bands(t *testing.T) {
	g := createTinyGraph(t)

	rs, err := BuildRules(&config.RulesConfig{
		Pointer: []config.PointerRuleConfig{
			{From: []string{"room_a"}, Item: "box", Band: &config.BandConfig{MaxY: ptr(50)}, To: "room_b"},
			{From: []string{"room_a"}, Item: "box", Band: &config.BandConfig{MinY: ptr(50)}, To: "room_a", Effects: []string{"showInventory"}},
		},
	}, g)
	require.NoError(t, err)

	lower := rs.Pointer[0].Band
	assert.True(t, lower.Contains(0))
	assert.True(t, lower.Contains(-1000), "missing minY is open")
	assert.False(t, lower.Contains(50), "maxY is exclusive")

	upper := rs.Pointer[1].Band
	assert.True(t, upper.Contains(50), "minY is inclusive")
	assert.True(t, upper.Contains(1e9))
	assert.True(t, rs.Pointer[1].Effects.Has(EffectShowInventory))
	assert.False(t, rs.Pointer[1].Effects.Has(EffectCollectKey))
}

func TestBuildRules_Errors(t *testing.T) {
	g := createTinyGraph(t)

	tests := []struct {
		name    string
		cfg     config.RulesConfig
		wantErr error
	}{
		{
			name:    "unknown source scene",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"attic"}, Item: "box", To: "room_b"}}},
			wantErr: entity.ErrUnknownScene,
		},
		{
			name:    "unknown target scene",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"room_a"}, Item: "box", To: "attic"}}},
			wantErr: entity.ErrUnknownScene,
		},
		{
			name:    "unknown effect",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"room_a"}, Item: "box", Effects: []string{"teleport"}}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "from and anyScene",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"room_a"}, AnyScene: true, Item: "box", To: "room_b"}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "no source",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{Item: "box", To: "room_b"}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "empty band",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"room_a"}, Item: "box", Band: &config.BandConfig{MinY: ptr(10), MaxY: ptr(10)}, To: "room_b"}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "rule without target or effect",
			cfg:     config.RulesConfig{Pointer: []config.PointerRuleConfig{{From: []string{"room_a"}, Item: "box"}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "unknown key symbol",
			cfg:     config.RulesConfig{Keys: []config.KeyRuleConfig{{Key: "escape", AnyScene: true, To: "room_a"}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "key rule without target",
			cfg:     config.RulesConfig{Keys: []config.KeyRuleConfig{{Key: "up", AnyScene: true}}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "unknown except scene",
			cfg:     config.RulesConfig{Keys: []config.KeyRuleConfig{{Key: "restart", AnyScene: true, Except: []string{"attic"}, To: "room_a"}}},
			wantErr: entity.ErrUnknownScene,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRules(&tt.cfg, g)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRuleSet_PointerRules_Priority(t *testing.T) {
	g := createTinyGraph(t)

	rs, err := BuildRules(&config.RulesConfig{
		Pointer: []config.PointerRuleConfig{
			{AnyScene: true, Item: "key", Effects: []string{"collectKey"}},
			{From: []string{"room_a"}, Item: "key", To: "room_b"},
		},
	}, g)
	require.NoError(t, err)

	rules := rs.PointerRules("room_a", "key")
	require.Len(t, rules, 2)
	assert.Equal(t, entity.SceneID("room_b"), rules[0].Target, "scene-specific rules come first")
	assert.True(t, rules[1].Source.Any)

	rules = rs.PointerRules("room_b", "key")
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Effects.Has(EffectCollectKey))

	assert.Empty(t, rs.PointerRules("room_a", "lamp"))
}

func TestRuleSet_KeyRule(t *testing.T) {
	g := createTinyGraph(t)

	rs, err := BuildRules(&config.RulesConfig{
		Keys: []config.KeyRuleConfig{
			{Key: "left", From: []string{"room_a"}, To: "room_b"},
			{Key: "restart", AnyScene: true, Except: []string{"room_b"}, To: "room_a", Effects: []string{"hideInventory"}},
		},
	}, g)
	require.NoError(t, err)

	r, ok := rs.KeyRule("room_a", SymbolLeft)
	require.True(t, ok)
	assert.Equal(t, entity.SceneID("room_b"), r.Target)

	_, ok = rs.KeyRule("room_b", SymbolLeft)
	assert.False(t, ok)

	r, ok = rs.KeyRule("room_a", SymbolRestart)
	require.True(t, ok)
	assert.True(t, r.Effects.Has(EffectHideInventory))

	_, ok = rs.KeyRule("room_b", SymbolRestart)
	assert.False(t, ok, "excluded scene")
}

func TestSource_Matches(t *testing.T) {
	src := Source{
		Scenes: map[entity.SceneID]struct{}{"main_scene1": {}},
	}
	assert.True(t, src.Matches("main_scene1"))
	assert.False(t, src.Matches("main_scene2"))

	everywhere := Source{Any: true, Except: map[entity.SceneID]struct{}{"screen_end": {}}}
	assert.True(t, everywhere.Matches("main_scene2"))
	assert.False(t, everywhere.Matches("screen_end"))
}
