package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestFlush_TrueColor(t *testing.T) {
	s := newSimScreen(t, 6, 2)
	b := NewRenderBuffer(6, 2)
	b.SetWithBg(1, 0, 'G', RgbAccent, RgbPanel)
	b.SetFgOnly(2, 1, '!', RgbWarning, AttrBold)

	b.Flush(s, ColorModeTrueColor)
	s.Show()

	cells, w, _ := s.GetContents()
	require.Equal(t, 6, w)

	c := cells[1]
	require.NotEmpty(t, c.Runes)
	assert.Equal(t, 'G', c.Runes[0])
	fg, bg, _ := c.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x0E, 0xA5, 0xE9), fg)
	assert.Equal(t, tcell.NewRGBColor(0x1A, 0x1F, 0x2C), bg)

	bang := cells[w+2]
	assert.Equal(t, '!', bang.Runes[0])
	_, _, attrs := bang.Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)

	assert.Equal(t, ' ', cells[0].Runes[0], "empty cells flush as blanks")
}

func TestFlush_256Color(t *testing.T) {
	s := newSimScreen(t, 2, 1)
	b := NewRenderBuffer(2, 1)
	b.SetWithBg(0, 0, 'x', RgbWhite, RgbBlack)

	b.Flush(s, ColorMode256)
	s.Show()

	cells, _, _ := s.GetContents()
	fg, bg, _ := cells[0].Style.Decompose()
	assert.Equal(t, tcell.PaletteColor(231), fg)
	assert.Equal(t, tcell.PaletteColor(16), bg)
}

func TestQuantize256(t *testing.T) {
	assert.Equal(t, 16, Quantize256(RgbBlack))
	assert.Equal(t, 231, Quantize256(RGB{255, 255, 255}))
	assert.Equal(t, 196, Quantize256(RGB{255, 0, 0}))

	idx := Quantize256(RgbAccent)
	assert.GreaterOrEqual(t, idx, 16)
	assert.LessOrEqual(t, idx, 255)
	assert.Equal(t, idx, Quantize256(RgbAccent), "cached result is stable")
}

func TestDetectColorMode_Explicit(t *testing.T) {
	assert.Equal(t, ColorModeTrueColor, DetectColorMode("truecolor"))
	assert.Equal(t, ColorMode256, DetectColorMode("256"))
	assert.Equal(t, "256", ColorMode256.String())
}

func TestDetectColorMode_AutoWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ColorMode256, DetectColorMode("auto"))
}
