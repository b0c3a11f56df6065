package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/gman-shooter/config"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// DetectColorMode resolves the configured mode; "auto" asks termenv for the terminal profile
func DetectColorMode(setting string) ColorMode {
	switch setting {
	case config.ColorTrueColor:
		return ColorModeTrueColor
	case config.Color256:
		return ColorMode256
	}
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}

var (
	xtermOnce    sync.Once
	xtermPalette []colorful.Color

	quantMu    sync.Mutex
	quantCache = map[RGB]int{}
)

// buildXterm computes the 6x6x6 cube and the gray ramp (indices 16..255)
func buildXterm() {
	levels := [6]float64{0, 95, 135, 175, 215, 255}
	xtermPalette = make([]colorful.Color, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xtermPalette = append(xtermPalette, colorful.Color{R: levels[r] / 255, G: levels[g] / 255, B: levels[b] / 255})
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+i*10) / 255
		xtermPalette = append(xtermPalette, colorful.Color{R: v, G: v, B: v})
	}
}

// Quantize256 returns the perceptually nearest xterm palette index
func Quantize256(c RGB) int {
	quantMu.Lock()
	defer quantMu.Unlock()
	if idx, ok := quantCache[c]; ok {
		return idx
	}
	xtermOnce.Do(buildXterm)

	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := 0, 1e9
	for i, p := range xtermPalette {
		if d := target.DistanceLab(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	idx := best + 16
	quantCache[c] = idx
	return idx
}

// TcellColor converts an RGB value for the given mode
func TcellColor(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(Quantize256(c))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
