package system

import (
	"math"

	"github.com/younwookim/escape/internal/domain/entity"
)

// hotspotGrid is the number of probe steps per axis when searching a hit area
const hotspotGrid = 16

// Hotspot is a clickable point that fires a pointer rule in the active scene
type Hotspot struct {
	Item   string
	X, Y   float64
	Target entity.SceneID
	Rule   PointerRule
}

// Hotspots returns one point per pointer rule that can fire right now.
// Each point hits the rule's item first and lies inside the rule's band.
// Rules shadowed by a higher priority rule at every probed point are left out.
func (n *Navigator) Hotspots() []Hotspot {
	scene := n.Active()
	var spots []Hotspot

	seen := make(map[string]struct{})
	for _, it := range scene.Items() {
		if _, dup := seen[it.Name()]; dup {
			continue
		}
		seen[it.Name()] = struct{}{}

		rules := n.rules.PointerRules(n.active, it.Name())
		for i, r := range rules {
			if r.RequireAllKeys && !n.inventory.Complete() {
				continue
			}
			x, y, ok := n.findPoint(scene, it, rules[:i], r)
			if !ok {
				continue
			}
			target := r.Target
			if target == "" {
				target = n.active
			}
			spots = append(spots, Hotspot{Item: it.Name(), X: x, Y: y, Target: target, Rule: r})
		}
	}
	return spots
}

// findPoint searches the item's area inside the band for a point where the
// item is the first hit and no earlier rule would fire instead.
// The centre is tried first.
func (n *Navigator) findPoint(scene *entity.Scene, it *entity.Item, earlier []PointerRule, r PointerRule) (float64, float64, bool) {
	area, ok := r.Band.Clip(it.Rect())
	if !ok {
		return 0, 0, false
	}

	accept := func(x, y float64) bool {
		first, hit := scene.ItemAt(x, y)
		if !hit || first != it || !r.Band.Contains(y) {
			return false
		}
		for _, e := range earlier {
			if e.Band.Contains(y) && (!e.RequireAllKeys || n.inventory.Complete()) {
				return false
			}
		}
		return true
	}

	cx := math.Floor(area.X + area.W/2)
	cy := math.Floor(area.Y + area.H/2)
	if accept(cx, cy) {
		return cx, cy, true
	}

	for i := 0; i < hotspotGrid; i++ {
		y := math.Floor(area.Y + area.H*(float64(i)+0.5)/hotspotGrid)
		for j := 0; j < hotspotGrid; j++ {
			x := math.Floor(area.X + area.W*(float64(j)+0.5)/hotspotGrid)
			if accept(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
