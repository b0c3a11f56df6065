package render

import "github.com/gdamore/tcell/v2"

// Style builds the tcell style for a cell
func Style(c Cell, mode ColorMode) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(TcellColor(c.Fg, mode)).
		Background(TcellColor(c.Bg, mode))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Flush copies the buffer to the screen; the caller shows it
func (b *RenderBuffer) Flush(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		skip := false
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if skip && c.Rune == 0 {
				skip = false
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, Style(c, mode))
			skip = isWide(r)
		}
	}
}
