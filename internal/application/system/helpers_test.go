package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

const testConfigDir = "../../../cmd/game/configs"

func loadTestConfig(t testing.TB) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader(testConfigDir).LoadAll()
	require.NoError(t, err)
	return cfg
}

func createTestNavigator(t testing.TB) *Navigator {
	t.Helper()
	return createTestNavigatorWithLogger(t, zap.NewNop())
}

func createTestNavigatorWithLogger(t testing.TB, logger *zap.Logger) *Navigator {
	t.Helper()
	cfg := loadTestConfig(t)
	nav, err := BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), logger)
	require.NoError(t, err)
	return nav
}

// navigatorAt returns a navigator already on the given scene
func navigatorAt(t testing.TB, id entity.SceneID) *Navigator {
	t.Helper()
	nav := createTestNavigator(t)
	require.NoError(t, nav.Jump(id))
	return nav
}

// fillInventory adds keys until the exit unlocks
func fillInventory(nav *Navigator) {
	for !nav.Inventory().Complete() {
		nav.Inventory().AddKey()
	}
}

// click fires the hotspot of item in the active scene that leads to target
func click(t *testing.T, nav *Navigator, item string, target entity.SceneID) Outcome {
	t.Helper()
	for _, h := range nav.Hotspots() {
		if h.Item == item && h.Target == target {
			return nav.OnPointerEvent(h.X, h.Y, ButtonLeft)
		}
	}
	require.Failf(t, "no hotspot", "%s -> %s in %s", item, target, nav.ActiveID())
	return Outcome{}
}
