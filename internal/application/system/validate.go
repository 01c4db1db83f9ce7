package system

import (
	"fmt"
	"sort"

	"github.com/younwookim/escape/internal/domain/entity"
)

// Issue is one problem found in the authored scene and rule data
type Issue struct {
	Scene   entity.SceneID
	Item    string
	Message string
}

func (i Issue) Error() string {
	switch {
	case i.Scene == "":
		return i.Message
	case i.Item == "":
		return fmt.Sprintf("%s: %s", i.Scene, i.Message)
	default:
		return fmt.Sprintf("%s/%s: %s", i.Scene, i.Item, i.Message)
	}
}

// Validate checks the graph and rule table for authoring mistakes the
// loaders cannot catch on their own. An empty result means the data is sound.
func Validate(graph *SceneGraph, rules *RuleSet) []Issue {
	var issues []Issue
	issues = append(issues, checkPointerRules(graph, rules)...)
	issues = append(issues, checkKeys(graph)...)
	issues = append(issues, checkBackGroups(graph, rules)...)
	issues = append(issues, checkReachable(graph, rules)...)
	return issues
}

func checkPointerRules(graph *SceneGraph, rules *RuleSet) []Issue {
	var issues []Issue
	for _, r := range rules.Pointer {
		if r.Source.Any {
			found := false
			for _, id := range graph.Order {
				if r.Source.Matches(id) {
					if _, ok := graph.Scenes[id].FindItem(r.Item); ok {
						found = true
						break
					}
				}
			}
			if !found {
				issues = append(issues, Issue{Item: r.Item, Message: "anyScene rule matches no item"})
			}
			continue
		}

		for _, id := range sortedScenes(r.Source.Scenes) {
			it, ok := graph.Scenes[id].FindItem(r.Item)
			if !ok {
				issues = append(issues, Issue{Scene: id, Item: r.Item, Message: "rule references missing item"})
				continue
			}
			if _, ok := r.Band.Clip(it.Rect()); !ok {
				issues = append(issues, Issue{
					Scene:   id,
					Item:    r.Item,
					Message: fmt.Sprintf("band [%g, %g) misses the item", r.Band.MinY, r.Band.MaxY),
				})
			}
		}
	}
	return issues
}

func checkKeys(graph *SceneGraph) []Issue {
	var issues []Issue
	total := 0
	for _, id := range graph.Order {
		n := 0
		for _, it := range graph.Scenes[id].Items() {
			if it.Name() == entity.KeyItemName {
				n++
			}
		}
		if n > 1 {
			issues = append(issues, Issue{Scene: id, Item: entity.KeyItemName, Message: fmt.Sprintf("%d keys in one scene", n)})
		}
		total += n
	}
	if total != entity.RequiredKeys {
		issues = append(issues, Issue{Message: fmt.Sprintf("%d keys placed, %d required", total, entity.RequiredKeys)})
	}
	return issues
}

func checkBackGroups(graph *SceneGraph, rules *RuleSet) []Issue {
	var issues []Issue
	for _, id := range graph.Order {
		groups := 0
		for _, r := range rules.Keys {
			if r.Symbol == SymbolBack && r.Source.Matches(id) {
				groups++
			}
		}
		if groups > 1 {
			issues = append(issues, Issue{Scene: id, Message: fmt.Sprintf("in %d back groups", groups)})
		}
	}
	return issues
}

// checkReachable walks every rule edge from the start scene, ignoring guards
func checkReachable(graph *SceneGraph, rules *RuleSet) []Issue {
	reached := map[entity.SceneID]bool{graph.Start: true}
	queue := []entity.SceneID{graph.Start}

	visit := func(id entity.SceneID) {
		if id != "" && !reached[id] {
			reached[id] = true
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, it := range graph.Scenes[id].Items() {
			for _, r := range rules.PointerRules(id, it.Name()) {
				visit(r.Target)
			}
		}
		for _, r := range rules.Keys {
			if r.Source.Matches(id) {
				visit(r.Target)
			}
		}
	}

	var issues []Issue
	for _, id := range graph.Order {
		if !reached[id] {
			issues = append(issues, Issue{Scene: id, Message: "unreachable from " + string(graph.Start)})
		}
	}
	return issues
}

func sortedScenes(set map[entity.SceneID]struct{}) []entity.SceneID {
	ids := make([]entity.SceneID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
