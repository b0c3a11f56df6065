package animation

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestGridRotation(t *testing.T) {
	assert.InDelta(t, 0, GridRotation(0), 1e-6)
	assert.InDelta(t, 1.0, GridRotation(10), 1e-5)

	// Wraps after a full turn
	full := 2 * math32.Pi / GridAngularSpeed
	assert.InDelta(t, 0.5, GridRotation(full+5), 1e-3)
}

func TestBossSway_Bounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		yaw, bob := BossSway(float32(i) * 0.037)
		assert.LessOrEqual(t, math32.Abs(yaw), float32(SwayAmplitude)+1e-6)
		assert.LessOrEqual(t, math32.Abs(bob), float32(BobAmplitude)+1e-6)
	}
	yaw, bob := BossSway(0)
	assert.Zero(t, yaw)
	assert.Zero(t, bob)
}

func TestHoverWobble_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.LessOrEqual(t, math32.Abs(HoverWobble(float32(i)*0.1)), float32(WobbleAmplitude)+1e-6)
	}
}

func TestGlovePulse_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := GlovePulse(float32(i) * 0.05)
		assert.GreaterOrEqual(t, p, float32(1.1)-1e-5)
		assert.LessOrEqual(t, p, float32(1.3)+1e-5)
	}
	assert.InDelta(t, 1.2, GlovePulse(0), 1e-6)
}

func TestBlinkOn(t *testing.T) {
	assert.True(t, BlinkOn(0))
	assert.True(t, BlinkOn(0.25))
	assert.False(t, BlinkOn(0.75))
	assert.True(t, BlinkOn(1.1))
	assert.True(t, BlinkOn(-0.2))
}

func TestGridOffset(t *testing.T) {
	assert.Equal(t, 0, GridOffset(0, 4))
	assert.Equal(t, 0, GridOffset(10, 0))
	for i := 0; i < 100; i++ {
		off := GridOffset(float32(i), 4)
		assert.GreaterOrEqual(t, off, 0)
		assert.Less(t, off, 4)
	}
}

func TestClock(t *testing.T) {
	var c Clock
	c.Advance(500 * time.Millisecond)
	c.Advance(-time.Second)
	c.Advance(250 * time.Millisecond)

	assert.Equal(t, 750*time.Millisecond, c.Elapsed())
	assert.InDelta(t, 0.75, c.T(), 1e-6)
	assert.Equal(t, int64(3), c.Frames())
}
