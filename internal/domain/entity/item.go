package entity

import "fmt"

// Item is a clickable sprite inside a scene.
type Item struct {
	name      string
	visual    Visual
	x, y      float64
	scale     float64
	keyLayer  bool
	destroyed bool
}

// NewItem creates an item at (x, y) whose hit box is the visual's size times scale.
func NewItem(name string, v Visual, x, y, scale float64, keyLayer bool) *Item {
	return &Item{
		name:     name,
		visual:   v,
		x:        x,
		y:        y,
		scale:    scale,
		keyLayer: keyLayer,
	}
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

func (i *Item) String() string {
	return i.name
}

// Visual returns the sprite handle.
func (i *Item) Visual() Visual {
	return i.visual
}

// Scale returns the draw scale.
func (i *Item) Scale() float64 {
	return i.scale
}

// KeyLayer reports whether the item is drawn on top of the others.
func (i *Item) KeyLayer() bool {
	return i.keyLayer
}

// Rect returns the hit rectangle.
func (i *Item) Rect() Rect {
	w, h := i.visual.Size()
	return Rect{
		X: i.x,
		Y: i.y,
		W: float64(w) * i.scale,
		H: float64(h) * i.scale,
	}
}

// HitTest reports whether the point is inside the item. Destroyed items never hit.
func (i *Item) HitTest(px, py float64) bool {
	if i.destroyed {
		return false
	}
	return i.Rect().Contains(px, py)
}

// Destroy invalidates the item. A second call fails with ErrItemDestroyed.
func (i *Item) Destroy() error {
	if i.destroyed {
		return fmt.Errorf("destroy %q: %w", i.name, ErrItemDestroyed)
	}
	i.destroyed = true
	return nil
}

// Destroyed reports whether Destroy has been called.
func (i *Item) Destroyed() bool {
	return i.destroyed
}

func (i *Item) draw(r Renderer) {
	r.DrawSprite(i.visual, i.x, i.y, i.scale)
}
