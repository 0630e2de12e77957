// Package booth implements the photobooth compositing core: it lays out
// captured photos into polaroid-style frames, applies filters, decorations
// and a caption, and renders the result to a single raster ready for PNG
// encoding.
package booth

import (
	"context"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/sarathoff/polaroid-booth/internal/fonts"
)

// Compositor turns a Request into one finished raster. It is safe for
// concurrent use: every Compose call draws on its own freshly allocated
// surface.
type Compositor struct {
	sources  SourceProvider
	catalog  *Catalog
	fonts    *fonts.Registry
	renderer *Renderer
}

func NewCompositor(sources SourceProvider, catalog *Catalog, fonts *fonts.Registry) *Compositor {
	return &Compositor{
		sources:  sources,
		catalog:  catalog,
		fonts:    fonts,
		renderer: NewRenderer(),
	}
}

// Compose resolves the layout, loads every asset, then draws each occupied
// cell in order. All loading finishes before the first pixel is drawn; a
// failed composition never returns a partial surface.
func (c *Compositor) Compose(ctx context.Context, req Request) (image.Image, error) {
	geo, err := Resolve(req.Layout, len(req.Images))
	if err != nil {
		return nil, err
	}
	if len(geo.Frames) == 0 {
		return nil, ErrNoImages
	}

	refs := req.Images[:len(geo.Frames)]
	assets, err := c.sources.Load(ctx, refs, req.Decorations)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	if len(assets.Images) == 0 {
		return nil, ErrNoImages
	}

	var chain FilterChain
	if f, ok := c.catalog.Filter(req.FilterID); ok {
		chain = f.Chain
	}
	face := c.fonts.Face(req.FontFamily)
	decorations := c.placeDecorations(req.Decorations, assets.Decorations)

	dc := gg.NewContext(geo.Width, geo.Height)
	for i, frame := range geo.Frames {
		cell := Cell{Image: assets.Images[i], Chain: chain, Face: face}
		if frame.Caption {
			cell.Caption = req.Caption
		}
		if frame.Decorations {
			cell.Decorations = decorations
		}
		dc.Push()
		dc.Translate(frame.X, frame.Y)
		dc.Scale(frame.ScaleX, frame.ScaleY)
		c.renderer.DrawCell(dc, cell)
		dc.Pop()
	}
	return dc.Image(), nil
}

// placeDecorations pairs loaded decoration rasters with their catalog
// offsets, preserving the request's id order so output stays deterministic.
// Ids that failed to load are simply absent.
func (c *Compositor) placeDecorations(ids []string, loaded map[string]image.Image) []PlacedDecoration {
	var out []PlacedDecoration
	for _, id := range ids {
		img, ok := loaded[id]
		if !ok {
			continue
		}
		deco, ok := c.catalog.Decoration(id)
		if !ok {
			continue
		}
		out = append(out, PlacedDecoration{Image: img, X: deco.OffsetX, Y: deco.OffsetY})
	}
	return out
}
