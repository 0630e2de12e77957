package booth

// Frame dimensions shared by every cell. A cell is the white polaroid card:
// a square photo window with equal padding on all sides and a caption band
// underneath.
const (
	ImageSide   = 480
	FramePad    = 40
	CaptionBand = 120
	CellGap     = 24

	CellWidth  = ImageSide + 2*FramePad
	CellHeight = ImageSide + FramePad + CaptionBand

	// Collage bottom row: two half-width cells, height scaled in proportion.
	SmallCellWidth  = (CellWidth - CellGap) / 2
	SmallCellHeight = SmallCellWidth * CellHeight / CellWidth
)

// Frame is one occupied cell placement within the output surface. Scale is
// relative to the standard cell; only collage's small cells differ from 1.
type Frame struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Caption        bool
	Decorations    bool
}

// Geometry is the resolved surface size and the occupied cell placements
// for one layout.
type Geometry struct {
	Width, Height int
	Frames        []Frame
}

// LayoutInfo describes a layout for the catalog listing.
type LayoutInfo struct {
	ID       Layout `json:"id"`
	Capacity int    `json:"capacity"`
}

// Layouts lists every known layout with its photo capacity.
func Layouts() []LayoutInfo {
	return []LayoutInfo{
		{LayoutSingle, 1},
		{LayoutGrid2x2, 4},
		{LayoutStrip, 4},
		{LayoutCollage, 3},
	}
}

// Capacity returns how many photos the layout can hold.
func (l Layout) Capacity() (int, error) {
	switch l {
	case LayoutSingle:
		return 1, nil
	case LayoutGrid2x2, LayoutStrip:
		return 4, nil
	case LayoutCollage:
		return 3, nil
	}
	return 0, &InvalidLayoutError{Layout: l}
}

// Resolve maps a layout id and the number of available photos to concrete
// frame placements. Photos beyond the layout's capacity are ignored; cells
// without a photo are omitted while the surface keeps the full layout
// dimensions. Pure arithmetic, no drawing surface involved.
//
// The first occupied frame carries the decorations, the last one the
// caption.
func Resolve(layout Layout, imageCount int) (Geometry, error) {
	capacity, err := layout.Capacity()
	if err != nil {
		return Geometry{}, err
	}
	n := imageCount
	if n > capacity {
		n = capacity
	}

	var g Geometry
	switch layout {
	case LayoutSingle:
		g = grid(1, 1, n)
	case LayoutGrid2x2:
		g = grid(2, 2, n)
	case LayoutStrip:
		g = grid(1, 4, n)
	case LayoutCollage:
		g = collage(n)
	}

	if n > 0 {
		g.Frames[0].Decorations = true
		g.Frames[n-1].Caption = true
	}
	return g, nil
}

// grid places n standard cells in row-major order.
func grid(cols, rows, n int) Geometry {
	g := Geometry{
		Width:  cols*CellWidth + (cols-1)*CellGap,
		Height: rows*CellHeight + (rows-1)*CellGap,
	}
	for i := 0; i < n; i++ {
		g.Frames = append(g.Frames, Frame{
			X:      float64((i % cols) * (CellWidth + CellGap)),
			Y:      float64((i / cols) * (CellHeight + CellGap)),
			ScaleX: 1,
			ScaleY: 1,
		})
	}
	return g
}

// collage places one full-width cell with up to two scaled-down cells
// beneath it. The small cells are standard frames drawn at full internal
// resolution and transformed down, so their content matches the large cell
// exactly.
func collage(n int) Geometry {
	g := Geometry{
		Width:  CellWidth,
		Height: CellHeight + CellGap + SmallCellHeight,
	}
	if n >= 1 {
		g.Frames = append(g.Frames, Frame{ScaleX: 1, ScaleY: 1})
	}
	sx := float64(SmallCellWidth) / float64(CellWidth)
	sy := float64(SmallCellHeight) / float64(CellHeight)
	for i := 1; i < n; i++ {
		g.Frames = append(g.Frames, Frame{
			X:      float64((i - 1) * (SmallCellWidth + CellGap)),
			Y:      float64(CellHeight + CellGap),
			ScaleX: sx,
			ScaleY: sy,
		})
	}
	return g
}
