package system

import (
	"fmt"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

// SceneGraph holds every scene of the game. All scenes are built at startup.
type SceneGraph struct {
	Scenes map[entity.SceneID]*entity.Scene
	Order  []entity.SceneID // declaration order

	Start entity.SceneID
	Title entity.SceneID
	HowTo entity.SceneID
	End   entity.SceneID
}

// Scene returns the scene with the given id
func (g *SceneGraph) Scene(id entity.SceneID) (*entity.Scene, bool) {
	s, ok := g.Scenes[id]
	return s, ok
}

// Has reports whether the id names a scene
func (g *SceneGraph) Has(id entity.SceneID) bool {
	_, ok := g.Scenes[id]
	return ok
}

// LoadSceneGraph converts a ScenesConfig into scenes, resolving every asset.
// A missing asset aborts the load with an error naming the scene and asset.
func LoadSceneGraph(cfg *config.ScenesConfig, loader entity.AssetLoader) (*SceneGraph, error) {
	g := &SceneGraph{
		Scenes: make(map[entity.SceneID]*entity.Scene, len(cfg.Scenes)),
		Order:  make([]entity.SceneID, 0, len(cfg.Scenes)),
	}

	for _, sc := range cfg.Scenes {
		scene, err := loadScene(sc, loader)
		if err != nil {
			return nil, err
		}
		if g.Has(scene.ID) {
			return nil, fmt.Errorf("duplicate scene %q", scene.ID)
		}
		g.Scenes[scene.ID] = scene
		g.Order = append(g.Order, scene.ID)
	}

	var err error
	if g.Start, err = g.lookup("start", cfg.Start, true); err != nil {
		return nil, err
	}
	if g.Title, err = g.lookup("title", cfg.Title, true); err != nil {
		return nil, err
	}
	if g.End, err = g.lookup("end", cfg.End, true); err != nil {
		return nil, err
	}
	if g.HowTo, err = g.lookup("howTo", cfg.HowTo, false); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *SceneGraph) lookup(role, id string, required bool) (entity.SceneID, error) {
	if id == "" {
		if required {
			return "", fmt.Errorf("%s scene is not set", role)
		}
		return "", nil
	}
	if !g.Has(entity.SceneID(id)) {
		return "", fmt.Errorf("%s scene %q: %w", role, id, entity.ErrUnknownScene)
	}
	return entity.SceneID(id), nil
}

func loadScene(sc config.SceneConfig, loader entity.AssetLoader) (*entity.Scene, error) {
	id := entity.SceneID(sc.ID)
	if id == "" {
		return nil, fmt.Errorf("scene without id")
	}

	bg, err := loader.Load(sc.Background.Asset)
	if err != nil {
		return nil, fmt.Errorf("scene %s background: %w", id, err)
	}

	items := make([]*entity.Item, 0, len(sc.Items))
	seen := make(map[string]struct{}, len(sc.Items))
	for _, ic := range sc.Items {
		if _, dup := seen[ic.Name]; dup {
			return nil, fmt.Errorf("scene %s: duplicate item %q", id, ic.Name)
		}
		seen[ic.Name] = struct{}{}

		v, err := loader.Load(ic.Asset)
		if err != nil {
			return nil, fmt.Errorf("scene %s item %s: %w", id, ic.Name, err)
		}
		items = append(items, entity.NewItem(ic.Name, v, ic.X, ic.Y, scaleOrOne(ic.Scale), ic.KeyLayer))
	}

	return entity.NewScene(id, bg, scaleOrOne(sc.Background.Scale), items), nil
}

// LoadInventory builds the key inventory from display config
func LoadInventory(cfg config.InventoryConfig, loader entity.AssetLoader) (*entity.Inventory, error) {
	panel, err := loader.Load(cfg.Panel)
	if err != nil {
		return nil, fmt.Errorf("inventory panel: %w", err)
	}
	icon, err := loader.Load(cfg.Icon)
	if err != nil {
		return nil, fmt.Errorf("inventory icon: %w", err)
	}

	layout := entity.DefaultInventoryLayout()
	layout.PanelX = cfg.PanelX
	layout.PanelY = cfg.PanelY
	if cfg.BaseX != 0 || cfg.BaseY != 0 {
		layout.BaseX = cfg.BaseX
		layout.BaseY = cfg.BaseY
	}
	if cfg.Step != 0 {
		layout.Step = cfg.Step
	}
	if cfg.TokenScale != 0 {
		layout.TokenScale = cfg.TokenScale
	}

	return entity.NewInventory(panel, icon, layout), nil
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
