package booth

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Card appearance shared by every cell.
const (
	shadowSigma   = 6.0
	shadowOffsetY = 10
	shadowMargin  = 24 // 4*sigma of headroom around the blurred silhouette
)

var (
	cardColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor  = color.NRGBA{A: 0x59}
	captionColor = color.NRGBA{R: 0x3b, G: 0x3b, B: 0x3b, A: 0xff}
)

// Cell is everything needed to draw one polaroid frame. Caption and
// Decorations are empty for cells that do not carry them.
type Cell struct {
	Image       image.Image
	Chain       FilterChain
	Caption     string
	Face        font.Face
	Decorations []PlacedDecoration
}

// PlacedDecoration is a decoration raster with its catalog offset.
type PlacedDecoration struct {
	Image image.Image
	X, Y  int
}

// Renderer draws polaroid cells onto a shared gg context. The blurred card
// shadow is identical for every cell, so it is rendered once up front.
type Renderer struct {
	shadow image.Image
}

func NewRenderer() *Renderer {
	return &Renderer{shadow: cardShadow()}
}

// cardShadow blurs the card silhouette once; cells paste it under the card
// with a vertical offset.
func cardShadow() image.Image {
	base := imaging.New(CellWidth+2*shadowMargin, CellHeight+2*shadowMargin, color.NRGBA{})
	silhouette := imaging.New(CellWidth, CellHeight, shadowColor)
	base = imaging.Paste(base, silhouette, image.Pt(shadowMargin, shadowMargin))
	return imaging.Blur(base, shadowSigma)
}

// DrawCell renders one frame with the context's current transform as the
// cell origin. The caller brackets each call with Push/Pop; DrawCell itself
// leaves no clip behind. Draw order matters: shadow, card, photo,
// decorations, caption, each layering over the last.
func (r *Renderer) DrawCell(dc *gg.Context, c Cell) {
	dc.DrawImage(r.shadow, -shadowMargin, shadowOffsetY-shadowMargin)
	dc.SetColor(cardColor)
	dc.DrawRectangle(0, 0, CellWidth, CellHeight)
	dc.Fill()

	// Photo window: filter, then cover-fit under a clip so the overflow is
	// cropped symmetrically. gg's Pop does not drop the clip mask, hence the
	// explicit ResetClip.
	photo := c.Chain.Apply(c.Image)
	b := photo.Bounds()
	s := coverScale(b.Dx(), b.Dy(), ImageSide, ImageSide)
	dc.Push()
	dc.DrawRectangle(FramePad, FramePad, ImageSide, ImageSide)
	dc.Clip()
	dc.Translate(FramePad+ImageSide/2, FramePad+ImageSide/2)
	dc.Scale(s, s)
	dc.DrawImageAnchored(photo, 0, 0, 0.5, 0.5)
	dc.Pop()
	dc.ResetClip()

	for _, d := range c.Decorations {
		dc.DrawImage(d.Image, d.X, d.Y)
	}

	if c.Caption != "" && c.Face != nil {
		dc.SetFontFace(c.Face)
		dc.SetColor(captionColor)
		bandCenterY := float64(FramePad + ImageSide + CaptionBand/2)
		dc.DrawStringAnchored(c.Caption, CellWidth/2, bandCenterY, 0.5, 0.5)
	}
}

// coverScale returns the uniform scale that makes a srcW x srcH image fully
// cover a dstW x dstH rectangle.
func coverScale(srcW, srcH int, dstW, dstH float64) float64 {
	return math.Max(dstW/float64(srcW), dstH/float64(srcH))
}
