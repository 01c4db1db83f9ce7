package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

// ErrInvalidRule reports a malformed entry in the rule table
var ErrInvalidRule = errors.New("invalid rule")

// Effect is a side effect a rule applies besides changing scene
type Effect uint8

const (
	EffectCollectKey Effect = 1 << iota
	EffectShowInventory
	EffectHideInventory
)

var effectNames = map[string]Effect{
	"collectKey":    EffectCollectKey,
	"showInventory": EffectShowInventory,
	"hideInventory": EffectHideInventory,
}

// Has reports whether e includes every flag in f
func (e Effect) Has(f Effect) bool {
	return e&f == f
}

func parseEffects(names []string) (Effect, error) {
	var e Effect
	for _, n := range names {
		f, ok := effectNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown effect %q: %w", n, ErrInvalidRule)
		}
		e |= f
	}
	return e, nil
}

// Source is the set of scenes a rule applies in
type Source struct {
	Any    bool
	Scenes map[entity.SceneID]struct{}
	Except map[entity.SceneID]struct{}
}

// Matches reports whether the rule applies while id is active
func (s Source) Matches(id entity.SceneID) bool {
	if _, excluded := s.Except[id]; excluded {
		return false
	}
	if s.Any {
		return true
	}
	_, ok := s.Scenes[id]
	return ok
}

// PointerRule fires when Item is clicked inside Band
type PointerRule struct {
	Source         Source
	Item           string
	Band           entity.Band
	RequireAllKeys bool
	Target         entity.SceneID // empty keeps the active scene
	Effects        Effect
}

// KeyRule fires when Symbol is pressed
type KeyRule struct {
	Source  Source
	Symbol  KeySymbol
	Target  entity.SceneID
	Effects Effect
}

// RuleSet is the transition table. Scene-specific pointer rules take
// priority over anyScene rules; within a class, file order is priority order.
type RuleSet struct {
	Pointer []PointerRule
	Keys    []KeyRule

	byRef  map[entity.ItemRef][]int
	byName map[string][]int // anyScene rules
}

// BuildRules converts rule config into a RuleSet checked against the graph
func BuildRules(cfg *config.RulesConfig, graph *SceneGraph) (*RuleSet, error) {
	rs := &RuleSet{
		Pointer: make([]PointerRule, 0, len(cfg.Pointer)),
		Keys:    make([]KeyRule, 0, len(cfg.Keys)),
		byRef:   make(map[entity.ItemRef][]int),
		byName:  make(map[string][]int),
	}

	for i, rc := range cfg.Pointer {
		r, err := buildPointerRule(rc, graph)
		if err != nil {
			return nil, fmt.Errorf("pointer rule %d (%s): %w", i, rc.Item, err)
		}
		rs.addPointer(r)
	}

	for i, kc := range cfg.Keys {
		r, err := buildKeyRule(kc, graph)
		if err != nil {
			return nil, fmt.Errorf("key rule %d (%s): %w", i, kc.Key, err)
		}
		rs.Keys = append(rs.Keys, r)
	}

	return rs, nil
}

func (rs *RuleSet) addPointer(r PointerRule) {
	idx := len(rs.Pointer)
	rs.Pointer = append(rs.Pointer, r)

	if r.Source.Any {
		rs.byName[r.Item] = append(rs.byName[r.Item], idx)
		return
	}
	for id := range r.Source.Scenes {
		ref := entity.ItemRef{Scene: id, Name: r.Item}
		rs.byRef[ref] = append(rs.byRef[ref], idx)
	}
}

// PointerRules returns the rules for an item of a scene in priority order
func (rs *RuleSet) PointerRules(scene entity.SceneID, item string) []PointerRule {
	ref := entity.ItemRef{Scene: scene, Name: item}
	specific := rs.byRef[ref]
	generic := rs.byName[item]

	out := make([]PointerRule, 0, len(specific)+len(generic))
	for _, i := range specific {
		out = append(out, rs.Pointer[i])
	}
	for _, i := range generic {
		if rs.Pointer[i].Source.Matches(scene) {
			out = append(out, rs.Pointer[i])
		}
	}
	return out
}

// KeyRule returns the first key rule for the symbol in the scene
func (rs *RuleSet) KeyRule(scene entity.SceneID, sym KeySymbol) (KeyRule, bool) {
	for _, r := range rs.Keys {
		if r.Symbol == sym && r.Source.Matches(scene) {
			return r, true
		}
	}
	return KeyRule{}, false
}

func buildSource(from []string, anyScene bool, except []string, graph *SceneGraph) (Source, error) {
	if anyScene == (len(from) > 0) {
		return Source{}, fmt.Errorf("exactly one of from and anyScene must be set: %w", ErrInvalidRule)
	}

	src := Source{Any: anyScene}
	var err error
	if src.Scenes, err = sceneSet(from, graph); err != nil {
		return Source{}, err
	}
	if src.Except, err = sceneSet(except, graph); err != nil {
		return Source{}, err
	}
	return src, nil
}

func sceneSet(ids []string, graph *SceneGraph) (map[entity.SceneID]struct{}, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	set := make(map[entity.SceneID]struct{}, len(ids))
	for _, id := range ids {
		if !graph.Has(entity.SceneID(id)) {
			return nil, fmt.Errorf("scene %q: %w", id, entity.ErrUnknownScene)
		}
		set[entity.SceneID(id)] = struct{}{}
	}
	return set, nil
}

func buildTarget(to string, graph *SceneGraph) (entity.SceneID, error) {
	if to == "" {
		return "", nil
	}
	if !graph.Has(entity.SceneID(to)) {
		return "", fmt.Errorf("target %q: %w", to, entity.ErrUnknownScene)
	}
	return entity.SceneID(to), nil
}

func buildPointerRule(rc config.PointerRuleConfig, graph *SceneGraph) (PointerRule, error) {
	if rc.Item == "" {
		return PointerRule{}, fmt.Errorf("missing item: %w", ErrInvalidRule)
	}

	src, err := buildSource(rc.From, rc.AnyScene, nil, graph)
	if err != nil {
		return PointerRule{}, err
	}
	target, err := buildTarget(rc.To, graph)
	if err != nil {
		return PointerRule{}, err
	}
	effects, err := parseEffects(rc.Effects)
	if err != nil {
		return PointerRule{}, err
	}
	if target == "" && effects == 0 {
		return PointerRule{}, fmt.Errorf("rule does nothing: %w", ErrInvalidRule)
	}

	band := entity.FullBand
	if rc.Band != nil {
		if rc.Band.MinY != nil {
			band.MinY = *rc.Band.MinY
		}
		if rc.Band.MaxY != nil {
			band.MaxY = *rc.Band.MaxY
		}
		if band.MaxY <= band.MinY {
			return PointerRule{}, fmt.Errorf("empty band: %w", ErrInvalidRule)
		}
	}

	return PointerRule{
		Source:         src,
		Item:           rc.Item,
		Band:           band,
		RequireAllKeys: rc.RequireAllKeys,
		Target:         target,
		Effects:        effects,
	}, nil
}

func buildKeyRule(kc config.KeyRuleConfig, graph *SceneGraph) (KeyRule, error) {
	sym, err := ParseKeySymbol(kc.Key)
	if err != nil {
		return KeyRule{}, fmt.Errorf("%v: %w", err, ErrInvalidRule)
	}
	src, err := buildSource(kc.From, kc.AnyScene, kc.Except, graph)
	if err != nil {
		return KeyRule{}, err
	}
	target, err := buildTarget(kc.To, graph)
	if err != nil {
		return KeyRule{}, err
	}
	if target == "" {
		return KeyRule{}, fmt.Errorf("missing target: %w", ErrInvalidRule)
	}
	effects, err := parseEffects(kc.Effects)
	if err != nil {
		return KeyRule{}, err
	}

	return KeyRule{
		Source:  src,
		Symbol:  sym,
		Target:  target,
		Effects: effects,
	}, nil
}
