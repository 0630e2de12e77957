package booth

import (
	"sort"
	"strings"
)

// FilterStyle is one selectable filter: a display name for the picker and
// the adjustment chain behind it.
type FilterStyle struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Chain       FilterChain `json:"-"`
}

// Decoration is one overlay sticker with its fixed placement within the
// primary cell. Width and height are the size it is drawn at, regardless of
// the asset's native resolution.
type Decoration struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AssetURL    string `json:"asset_url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	OffsetX     int    `json:"offset_x"`
	OffsetY     int    `json:"offset_y"`
}

// Catalog is the static style registry: filters and decorations, built once
// at startup and read-only afterwards.
type Catalog struct {
	filters     map[string]FilterStyle
	decorations map[string]Decoration
}

const defaultAssetBase = "https://sarathoff.github.io/polaroid-booth/assets"

// NewCatalog builds the default registry. Decoration asset paths are joined
// onto assetBase so deployments can point at their own CDN.
func NewCatalog(assetBase string) *Catalog {
	if assetBase == "" {
		assetBase = defaultAssetBase
	}
	assetBase = strings.TrimRight(assetBase, "/")

	c := &Catalog{
		filters:     make(map[string]FilterStyle),
		decorations: make(map[string]Decoration),
	}

	for _, f := range []FilterStyle{
		{ID: "none", DisplayName: "None", Chain: nil},
		{ID: "vintage", DisplayName: "Vintage", Chain: FilterChain{
			{FilterSepia, 0.45},
			{FilterContrast, 1.1},
			{FilterBrightness, 1.05},
		}},
		{ID: "noir", DisplayName: "Noir", Chain: FilterChain{
			{FilterGrayscale, 1},
			{FilterContrast, 1.2},
		}},
		{ID: "dreamy", DisplayName: "Dreamy", Chain: FilterChain{
			{FilterBlur, 1.5},
			{FilterBrightness, 1.1},
			{FilterSaturate, 1.2},
		}},
		{ID: "pop", DisplayName: "Pop", Chain: FilterChain{
			{FilterSaturate, 1.6},
			{FilterContrast, 1.15},
		}},
		{ID: "faded", DisplayName: "Faded", Chain: FilterChain{
			{FilterSaturate, 0.7},
			{FilterBrightness, 1.1},
			{FilterContrast, 0.9},
		}},
		{ID: "sunset", DisplayName: "Sunset", Chain: FilterChain{
			{FilterHueRotate, 330},
			{FilterSaturate, 1.3},
		}},
	} {
		c.filters[f.ID] = f
	}

	for _, d := range []Decoration{
		{ID: "hearts", DisplayName: "Hearts", AssetURL: assetBase + "/decorations/hearts.png",
			Width: 120, Height: 120, OffsetX: CellWidth - 150, OffsetY: 16},
		{ID: "stars", DisplayName: "Stars", AssetURL: assetBase + "/decorations/stars.png",
			Width: 110, Height: 110, OffsetX: 20, OffsetY: 20},
		{ID: "bunny-ears", DisplayName: "Bunny Ears", AssetURL: assetBase + "/decorations/bunny-ears.png",
			Width: 180, Height: 100, OffsetX: (CellWidth - 180) / 2, OffsetY: 8},
		{ID: "sparkles", DisplayName: "Sparkles", AssetURL: assetBase + "/decorations/sparkles.png",
			Width: 130, Height: 130, OffsetX: 24, OffsetY: ImageSide - 90},
		{ID: "bow", DisplayName: "Bow", AssetURL: assetBase + "/decorations/bow.png",
			Width: 100, Height: 80, OffsetX: CellWidth - 130, OffsetY: ImageSide - 60},
	} {
		c.decorations[d.ID] = d
	}

	return c
}

// Filter looks up a filter style by id.
func (c *Catalog) Filter(id string) (FilterStyle, bool) {
	f, ok := c.filters[id]
	return f, ok
}

// Decoration looks up a decoration by id.
func (c *Catalog) Decoration(id string) (Decoration, bool) {
	d, ok := c.decorations[id]
	return d, ok
}

// Filters lists every filter style, sorted by id.
func (c *Catalog) Filters() []FilterStyle {
	out := make([]FilterStyle, 0, len(c.filters))
	for _, f := range c.filters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Decorations lists every decoration, sorted by id.
func (c *Catalog) Decorations() []Decoration {
	out := make([]Decoration, 0, len(c.decorations))
	for _, d := range c.decorations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
