package render

import "github.com/mattn/go-runewidth"

// RenderBuffer is a compositor over a flat cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: 0, Fg: RgbMuted, Bg: RgbBackground, Attrs: AttrNone}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Width returns the buffer width in cells
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *RenderBuffer) Height() int { return b.height }

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether a background was written at x,y this frame
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Set composites a cell; a zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
	}
	switch mode {
	case BlendReplace:
		dst.Fg, dst.Bg = fg, bg
	case BlendAlpha:
		dst.Fg = dst.Fg.Blend(fg, alpha)
		dst.Bg = dst.Bg.Blend(bg, alpha)
	case BlendMax:
		dst.Fg = dst.Fg.Max(fg)
		dst.Bg = dst.Bg.Max(bg)
	}
	b.touched[idx] = true
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: AttrNone}
	b.touched[idx] = true
}

// Fill paints a rectangle's background, keeping glyphs
func (b *RenderBuffer) Fill(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// Text writes s starting at x,y keeping the background; returns the columns used
// Wide runes occupy two cells, the second left empty
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(col, y, r, fg, attrs)
		if w == 2 {
			b.SetFgOnly(col+1, y, 0, fg, attrs)
		}
		col += w
	}
	return col - x
}

// TextCentered writes s centered on the row within [x, x+w)
func (b *RenderBuffer) TextCentered(x, y, w int, s string, fg RGB, attrs Attr) {
	sw := runewidth.StringWidth(s)
	b.Text(x+max((w-sw)/2, 0), y, s, fg, attrs)
}

// Row returns the glyphs of row y as a string, empty cells as spaces
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			if x > 0 && runewidth.RuneWidth(b.cells[y*b.width+x-1].Rune) == 2 {
				continue
			}
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}
