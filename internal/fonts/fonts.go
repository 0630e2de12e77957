// Package fonts maps the catalog's caption font families onto embedded
// typefaces, so captions render identically on every deployment with no
// font files on disk.
package fonts

import (
	"fmt"
	"sort"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// CaptionSize is the fixed caption point size; the caption band height in
// the layout assumes it.
const CaptionSize = 36

const defaultFamily = "classic"

// Registry holds the parsed typefaces for every selectable family.
type Registry struct {
	families map[string]*truetype.Font
}

func NewRegistry() *Registry {
	return &Registry{families: map[string]*truetype.Font{
		"classic":    mustParse("classic", goregular.TTF),
		"bold":       mustParse("bold", gobold.TTF),
		"script":     mustParse("script", goitalic.TTF),
		"typewriter": mustParse("typewriter", gomono.TTF),
		"smallcaps":  mustParse("smallcaps", gosmallcaps.TTF),
	}}
}

func mustParse(name string, ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("fonts: embedded %s font is unparseable: %v", name, err))
	}
	return f
}

// Families lists the selectable family names, sorted.
func (r *Registry) Families() []string {
	out := make([]string, 0, len(r.families))
	for name := range r.families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Face builds a caption face for the family, falling back to the default
// for unknown names. font.Face carries mutable glyph-cache state, so each
// caller gets a fresh one instead of a shared instance.
func (r *Registry) Face(family string) font.Face {
	f, ok := r.families[family]
	if !ok {
		f = r.families[defaultFamily]
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    CaptionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
