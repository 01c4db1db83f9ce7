package entity

import "fmt"

// Scene is one still screen: a background and an ordered set of items.
// Item order is both draw order and search order.
type Scene struct {
	ID         SceneID
	background Visual
	bgScale    float64
	items      []*Item
	hadKey     bool
}

// NewScene creates a scene. Background is drawn at the canvas origin.
func NewScene(id SceneID, background Visual, bgScale float64, items []*Item) *Scene {
	s := &Scene{
		ID:         id,
		background: background,
		bgScale:    bgScale,
		items:      items,
	}
	_, s.hadKey = s.FindItem(KeyItemName)
	return s
}

// Items returns the live items in order. The slice must not be modified.
func (s *Scene) Items() []*Item {
	return s.items
}

// Background returns the background visual and its scale.
func (s *Scene) Background() (Visual, float64) {
	return s.background, s.bgScale
}

// FindItem returns the first item named name in insertion order.
func (s *Scene) FindItem(name string) (*Item, bool) {
	for _, it := range s.items {
		if it.name == name {
			return it, true
		}
	}
	return nil, false
}

// ItemAt returns the first item whose hit rectangle contains the point.
func (s *Scene) ItemAt(x, y float64) (*Item, bool) {
	for _, it := range s.items {
		if it.HitTest(x, y) {
			return it, true
		}
	}
	return nil, false
}

// HasKey reports whether the scene still holds an uncollected key.
func (s *Scene) HasKey() bool {
	_, ok := s.FindItem(KeyItemName)
	return ok
}

// RemoveKey destroys the scene's key and drops it from the item set.
func (s *Scene) RemoveKey() error {
	key, ok := s.FindItem(KeyItemName)
	if !ok {
		if s.hadKey {
			return fmt.Errorf("scene %s: %w", s.ID, ErrDuplicateKeyRemoval)
		}
		return fmt.Errorf("scene %s: key: %w", s.ID, ErrItemNotFound)
	}
	if err := key.Destroy(); err != nil {
		return fmt.Errorf("scene %s: %w", s.ID, err)
	}

	kept := s.items[:0]
	for _, it := range s.items {
		if it != key {
			kept = append(kept, it)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return nil
}

// Render draws the background, the regular items, then the key layer on top.
func (s *Scene) Render(r Renderer) {
	r.DrawSprite(s.background, 0, 0, s.bgScale)
	for _, it := range s.items {
		if !it.keyLayer {
			it.draw(r)
		}
	}
	for _, it := range s.items {
		if it.keyLayer {
			it.draw(r)
		}
	}
}
