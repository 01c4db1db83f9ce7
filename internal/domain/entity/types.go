package entity

import (
	"errors"
	"math"
)

// SceneID identifies a scene. IDs are unique across the whole game.
type SceneID string

// KeyItemName is the item name shared by every hidden key.
const KeyItemName = "key"

// RequiredKeys is the number of keys that unlocks the exit.
const RequiredKeys = 10

var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrDuplicateKeyRemoval = errors.New("key already collected")
	ErrItemDestroyed       = errors.New("item already destroyed")
	ErrUnknownScene        = errors.New("unknown scene")
)

// ItemRef scopes an item name by the scene that owns it.
type ItemRef struct {
	Scene SceneID
	Name  string
}

func (r ItemRef) String() string {
	return string(r.Scene) + "/" + r.Name
}

// Rect is an axis-aligned rectangle in canvas units, origin bottom-left.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies in [X, X+W) × [Y, Y+H).
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W &&
		py >= r.Y && py < r.Y+r.H
}

// Band is a horizontal strip [MinY, MaxY) of the canvas.
// It narrows a click on one sprite down to a hotspot.
type Band struct {
	MinY float64
	MaxY float64
}

// FullBand accepts any y.
var FullBand = Band{MinY: math.Inf(-1), MaxY: math.Inf(1)}

// Contains reports whether y is inside the band.
func (b Band) Contains(y float64) bool {
	return y >= b.MinY && y < b.MaxY
}

// Clip returns the part of r inside the band and whether it is non-empty.
func (b Band) Clip(r Rect) (Rect, bool) {
	lo := math.Max(r.Y, b.MinY)
	hi := math.Min(r.Y+r.H, b.MaxY)
	if hi <= lo {
		return Rect{}, false
	}
	return Rect{X: r.X, Y: lo, W: r.W, H: hi - lo}, true
}

// Visual is an opaque handle to a renderable image.
type Visual interface {
	// Size returns the native pixel size of the image.
	Size() (w, h int)
}

// Renderer draws sprites onto the canvas. Coordinates are bottom-left origin.
type Renderer interface {
	DrawSprite(v Visual, x, y, scale float64)
	Clear()
}

// AssetLoader resolves asset identifiers to visuals.
// Unknown identifiers fail with ErrAssetNotFound.
type AssetLoader interface {
	Load(id string) (Visual, error)
}
