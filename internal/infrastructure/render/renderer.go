// Package render draws scenes with ebiten and loads their images.
//
// Scene coordinates have their origin at the bottom-left of the canvas while
// ebiten's origin is top-left, so every draw flips y.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/escape/internal/domain/entity"
)

var colorBG = color.RGBA{0, 0, 0, 255}

// Sprite is an ebiten image usable as an entity.Visual
type Sprite struct {
	ID    string
	Image *ebiten.Image
}

// Size implements entity.Visual
func (s *Sprite) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Renderer implements entity.Renderer on top of an ebiten screen
type Renderer struct {
	screen  *ebiten.Image
	screenH int
}

// NewRenderer creates a renderer for a canvas of the given height
func NewRenderer(screenH int) *Renderer {
	return &Renderer{screenH: screenH}
}

// Begin sets the target image for this frame
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the screen with the background colour
func (r *Renderer) Clear() {
	if r.screen != nil {
		r.screen.Fill(colorBG)
	}
}

// DrawSprite draws v with its bottom-left corner at (x, y).
// Visuals that are not sprites are skipped.
func (r *Renderer) DrawSprite(v entity.Visual, x, y, scale float64) {
	s, ok := v.(*Sprite)
	if !ok || r.screen == nil {
		return
	}
	_, h := s.Size()
	tx, ty := Placement(x, y, scale, h, r.screenH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(s.Image, op)
}

// Placement converts a bottom-left sprite origin to the top-left translation ebiten expects
func Placement(x, y, scale float64, h, screenH int) (float64, float64) {
	return x, float64(screenH) - y - float64(h)*scale
}
