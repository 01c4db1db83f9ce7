package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Display   ScreenConfig    `json:"display"`
	Inventory InventoryConfig `json:"inventory"`
}

type ScreenConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// InventoryConfig places the key panel and its stacked tokens
type InventoryConfig struct {
	Panel      string  `json:"panel"`
	Icon       string  `json:"icon"`
	PanelX     float64 `json:"panelX"`
	PanelY     float64 `json:"panelY"`
	BaseX      float64 `json:"baseX"`
	BaseY      float64 `json:"baseY"`
	Step       float64 `json:"step"`       // Vertical gap between tokens
	TokenScale float64 `json:"tokenScale"`
}

// ScenesConfig is the root config for scenes.json
type ScenesConfig struct {
	Start  string        `json:"start"` // Scene shown at launch
	Title  string        `json:"title"`
	HowTo  string        `json:"howTo"`
	End    string        `json:"end"`
	Scenes []SceneConfig `json:"scenes"`
}

type SceneConfig struct {
	ID         string       `json:"id"`
	Background SpriteConfig `json:"background"`
	Items      []ItemConfig `json:"items"`
}

type SpriteConfig struct {
	Asset string  `json:"asset"`
	Scale float64 `json:"scale"`
}

type ItemConfig struct {
	Name     string  `json:"name"`
	Asset    string  `json:"asset"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	KeyLayer bool    `json:"keyLayer,omitempty"` // Drawn above the other items
}

// RulesConfig is the root config for rules.json
type RulesConfig struct {
	Pointer []PointerRuleConfig `json:"pointer"`
	Keys    []KeyRuleConfig     `json:"keys"`
}

// PointerRuleConfig fires when an item is clicked in one of the source scenes
type PointerRuleConfig struct {
	From           []string    `json:"from,omitempty"`
	AnyScene       bool        `json:"anyScene,omitempty"`
	Item           string      `json:"item"`
	Band           *BandConfig `json:"band,omitempty"`
	RequireAllKeys bool        `json:"requireAllKeys,omitempty"`
	To             string      `json:"to,omitempty"`
	Effects        []string    `json:"effects,omitempty"`
}

// BandConfig limits a click to a vertical strip; a missing bound is open
type BandConfig struct {
	MinY *float64 `json:"minY,omitempty"`
	MaxY *float64 `json:"maxY,omitempty"`
}

// KeyRuleConfig fires when a key symbol is pressed in one of the source scenes
type KeyRuleConfig struct {
	Key      string   `json:"key"`
	From     []string `json:"from,omitempty"`
	AnyScene bool     `json:"anyScene,omitempty"`
	Except   []string `json:"except,omitempty"`
	To       string   `json:"to"`
	Effects  []string `json:"effects,omitempty"`
}

// AssetsConfig is the root config for assets.json
type AssetsConfig struct {
	Assets map[string]AssetSize `json:"assets"`
}

// AssetSize is the native pixel size of an image
type AssetSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
