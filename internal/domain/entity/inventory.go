package entity

// InventoryLayout positions the inventory panel and its key tokens.
type InventoryLayout struct {
	PanelX, PanelY float64
	BaseX, BaseY   float64 // first token
	Step           float64 // vertical distance between tokens
	TokenScale     float64
}

// DefaultInventoryLayout matches the 1280x720 canvas.
func DefaultInventoryLayout() InventoryLayout {
	return InventoryLayout{
		PanelX:     1112,
		PanelY:     0,
		BaseX:      1160,
		BaseY:      633,
		Step:       64,
		TokenScale: 0.1,
	}
}

// Token is one collected key drawn in the inventory panel.
type Token struct {
	X, Y float64
}

// Inventory counts collected keys. Collection is one-way.
type Inventory struct {
	layout  InventoryLayout
	panel   Visual
	icon    Visual
	tokens  []Token
	visible bool
}

// NewInventory creates an empty, hidden inventory.
func NewInventory(panel, icon Visual, layout InventoryLayout) *Inventory {
	return &Inventory{
		layout: layout,
		panel:  panel,
		icon:   icon,
	}
}

// AddKey stacks one more token under the previous one.
func (inv *Inventory) AddKey() {
	inv.tokens = append(inv.tokens, Token{
		X: inv.layout.BaseX,
		Y: inv.layout.BaseY - inv.layout.Step*float64(len(inv.tokens)),
	})
}

// Count returns the number of collected keys.
func (inv *Inventory) Count() int {
	return len(inv.tokens)
}

// Complete reports whether every required key has been collected.
func (inv *Inventory) Complete() bool {
	return inv.Count() == RequiredKeys
}

// Tokens returns the token positions in collection order.
func (inv *Inventory) Tokens() []Token {
	out := make([]Token, len(inv.tokens))
	copy(out, inv.tokens)
	return out
}

func (inv *Inventory) Show() {
	inv.visible = true
}

func (inv *Inventory) Hide() {
	inv.visible = false
}

func (inv *Inventory) Visible() bool {
	return inv.visible
}

// Render draws the panel and tokens. Hidden inventories draw nothing.
func (inv *Inventory) Render(r Renderer) {
	if !inv.visible {
		return
	}
	r.DrawSprite(inv.panel, inv.layout.PanelX, inv.layout.PanelY, 1)
	for _, t := range inv.tokens {
		r.DrawSprite(inv.icon, t.X, t.Y, inv.layout.TokenScale)
	}
}
