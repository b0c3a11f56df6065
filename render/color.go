package render

import "github.com/lixenwraith/gman-shooter/scene"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RgbBlack      = RGB{0, 0, 0}
	RgbBackground = FromScene(scene.ColorFloor)
	RgbPanel      = FromScene(scene.ColorDark)
	RgbAccent     = FromScene(scene.ColorAccent)
	RgbMuted      = FromScene(scene.ColorGray)
	RgbWhite      = FromScene(scene.ColorCrack)
	RgbWarning    = FromScene(scene.ColorWarning)
	RgbWarningBg  = RGB{0x42, 0x38, 0x0A}
	RgbViolet     = RGB{0x8B, 0x5C, 0xF6}
	RgbHealth     = RGB{0xEF, 0x44, 0x44}
	RgbHealthDim  = RGB{0x3A, 0x14, 0x14}
	RgbScore      = RGB{0xEA, 0xB3, 0x08}
	RgbDisabled   = RGB{0x4A, 0x4D, 0x52}
)

// FromScene converts a scene palette color
func FromScene(c scene.Color) RGB {
	r, g, b := c.RGB()
	return RGB{r, g, b}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (dst RGB) Max(src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Scale multiplies every channel by f, clamped
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp8(float64(c.R) * f), clamp8(float64(c.G) * f), clamp8(float64(c.B) * f)}
}

func clamp8(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendMax                      // Dst = max(Dst, Src) per channel
)
