package booth

import (
	"errors"
	"fmt"
)

// Layout identifies one of the fixed frame arrangements.
type Layout string

const (
	LayoutSingle  Layout = "single"
	LayoutGrid2x2 Layout = "grid-2x2"
	LayoutStrip   Layout = "grid-strip"
	LayoutCollage Layout = "collage"
)

// ImageRef is one captured photo, held as encoded bytes until the loader
// decodes it.
type ImageRef struct {
	Name string
	Data []byte
}

// Request describes one composition. It is read-only for the duration of a
// Compose call; nothing about it persists afterwards.
type Request struct {
	Layout      Layout
	Images      []ImageRef
	Caption     string
	FilterID    string
	FontFamily  string
	Decorations []string
}

// ErrNoImages is returned when a composition has zero usable photos.
var ErrNoImages = errors.New("no images to compose")

// InvalidLayoutError reports a layout id the geometry resolver does not
// recognize. This is a caller bug, not a runtime condition.
type InvalidLayoutError struct {
	Layout Layout
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("unknown layout %q", string(e.Layout))
}
