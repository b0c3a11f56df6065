// Package animation holds decorative motion keyed only by elapsed time
package animation

import (
	"time"

	"github.com/chewxy/math32"
)

// Motion constants in radians, units and seconds
const (
	GridAngularSpeed = 0.1

	SwayFrequency = 0.5
	SwayAmplitude = 0.1
	BobFrequency  = 0.8
	BobAmplitude  = 0.05

	WobbleFrequency = 2
	WobbleAmplitude = 0.1

	PulseBase      = 1.2
	PulseFrequency = 5
	PulseAmplitude = 0.1

	BlinkPeriod = 1.0
)

// Seconds converts a duration to float32 seconds
func Seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// GridRotation returns the grid yaw, wrapped to [0, 2π)
func GridRotation(t float32) float32 {
	return math32.Mod(t*GridAngularSpeed, 2*math32.Pi)
}

// BossSway returns the hidden character's idle yaw and vertical bob
func BossSway(t float32) (yaw, bob float32) {
	return math32.Sin(t*SwayFrequency) * SwayAmplitude,
		math32.Sin(t*BobFrequency) * BobAmplitude
}

// HoverWobble returns the roll applied to a hovered prop
func HoverWobble(t float32) float32 {
	return math32.Sin(t*WobbleFrequency) * WobbleAmplitude
}

// GlovePulse returns the scale of the active glove halo
func GlovePulse(t float32) float32 {
	return PulseBase + math32.Sin(t*PulseFrequency)*PulseAmplitude
}

// BlinkOn reports whether a blinking element is lit; on for the first half of each period
func BlinkOn(t float32) bool {
	if t < 0 {
		t = -t
	}
	return math32.Mod(t, BlinkPeriod) < BlinkPeriod/2
}

// GridOffset converts the grid rotation into a whole-cell horizontal scroll
// for a grid drawn every spacing cells
func GridOffset(t float32, spacing int) int {
	if spacing <= 0 {
		return 0
	}
	frac := GridRotation(t) / (2 * math32.Pi)
	return int(math32.Floor(frac*float32(spacing*8))) % spacing
}
