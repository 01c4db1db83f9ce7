package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/state"
	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

// Outcome reports what an input event did. The zero value means nothing fired.
type Outcome struct {
	Fired     bool
	From      entity.SceneID
	To        entity.SceneID
	Item      string // clicked item, empty for key events
	Collected bool   // a key was added to the inventory
}

// Changed reports whether the active scene changed
func (o Outcome) Changed() bool {
	return o.Fired && o.From != o.To
}

// Navigator owns the active scene and the inventory and resolves every
// input event against the rule table.
type Navigator struct {
	graph     *SceneGraph
	rules     *RuleSet
	inventory *entity.Inventory
	active    entity.SceneID
	logger    *zap.Logger
}

// NewNavigator creates a navigator positioned on the graph's start scene
func NewNavigator(graph *SceneGraph, rules *RuleSet, inventory *entity.Inventory, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		graph:     graph,
		rules:     rules,
		inventory: inventory,
		active:    graph.Start,
		logger:    logger,
	}
}

// BuildNavigator assembles the scene graph, rule table and inventory from
// loaded configuration and returns a navigator on the start scene.
func BuildNavigator(cfg *config.GameConfig, loader entity.AssetLoader, logger *zap.Logger) (*Navigator, error) {
	graph, err := LoadSceneGraph(cfg.Scenes, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenes: %w", err)
	}
	rules, err := BuildRules(cfg.Rules, graph)
	if err != nil {
		return nil, fmt.Errorf("failed to build rules: %w", err)
	}
	inv, err := LoadInventory(cfg.Display.Inventory, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory: %w", err)
	}
	return NewNavigator(graph, rules, inv, logger), nil
}

// Active returns the active scene
func (n *Navigator) Active() *entity.Scene {
	return n.graph.Scenes[n.active]
}

// ActiveID returns the id of the active scene
func (n *Navigator) ActiveID() entity.SceneID {
	return n.active
}

// Inventory returns the key inventory
func (n *Navigator) Inventory() *entity.Inventory {
	return n.inventory
}

// Graph returns the scene graph
func (n *Navigator) Graph() *SceneGraph {
	return n.graph
}

// Rules returns the rule table
func (n *Navigator) Rules() *RuleSet {
	return n.rules
}

// State returns the game phase implied by the active scene
func (n *Navigator) State() state.GameState {
	switch n.active {
	case n.graph.Title:
		return state.StateTitle
	case n.graph.End:
		return state.StateEnded
	}
	if n.graph.HowTo != "" && n.active == n.graph.HowTo {
		return state.StateHowTo
	}
	return state.StatePlaying
}

// Jump sets the active scene directly. Used by the console driver and tests.
func (n *Navigator) Jump(id entity.SceneID) error {
	if !n.graph.Has(id) {
		return fmt.Errorf("jump to %q: %w", id, entity.ErrUnknownScene)
	}
	n.active = id
	return nil
}

// OnPointerEvent handles a click at canvas coordinates.
// Only the first item under the point is considered; the button is ignored.
func (n *Navigator) OnPointerEvent(x, y float64, button MouseButton) Outcome {
	scene := n.Active()
	item, ok := scene.ItemAt(x, y)
	if !ok {
		return Outcome{}
	}

	for _, r := range n.rules.PointerRules(n.active, item.Name()) {
		if !r.Band.Contains(y) {
			continue
		}
		if r.RequireAllKeys && !n.inventory.Complete() {
			continue
		}

		out := n.apply(r.Target, r.Effects)
		out.Item = item.Name()
		n.logger.Debug("pointer rule fired",
			zap.String("from", string(out.From)),
			zap.String("to", string(out.To)),
			zap.String("item", out.Item),
			zap.Float64("x", x),
			zap.Float64("y", y),
		)
		return out
	}
	return Outcome{}
}

// OnKeyEvent handles a key symbol press
func (n *Navigator) OnKeyEvent(sym KeySymbol) Outcome {
	r, ok := n.rules.KeyRule(n.active, sym)
	if !ok {
		return Outcome{}
	}

	out := n.apply(r.Target, r.Effects)
	n.logger.Debug("key rule fired",
		zap.String("from", string(out.From)),
		zap.String("to", string(out.To)),
		zap.Stringer("key", sym),
	)
	return out
}

func (n *Navigator) apply(target entity.SceneID, effects Effect) Outcome {
	out := Outcome{Fired: true, From: n.active, To: n.active}

	if effects.Has(EffectCollectKey) {
		out.Collected = n.collectKey()
	}
	if effects.Has(EffectShowInventory) {
		n.inventory.Show()
	}
	if effects.Has(EffectHideInventory) {
		n.inventory.Hide()
	}

	if target != "" {
		n.active = target
		out.To = target
	}

	if out.To == n.graph.End && out.From != out.To {
		n.logger.Info("escaped", zap.Int("keys", n.inventory.Count()))
	}
	return out
}

func (n *Navigator) collectKey() bool {
	if err := n.Active().RemoveKey(); err != nil {
		n.logger.Warn("key removal failed", zap.String("scene", string(n.active)), zap.Error(err))
		return false
	}
	n.inventory.AddKey()
	n.logger.Info("key collected",
		zap.String("scene", string(n.active)),
		zap.Int("count", n.inventory.Count()),
	)
	return true
}

// Render draws the active scene and, when visible, the inventory
func (n *Navigator) Render(r entity.Renderer) {
	r.Clear()
	n.Active().Render(r)
	n.inventory.Render(r)
}
