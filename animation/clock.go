package animation

import "time"

// Clock accumulates frame time for time-keyed animation
// Owned by the game loop
type Clock struct {
	elapsed time.Duration
	frames  int64
}

// Advance adds one frame of dt; negative values are ignored
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
	c.frames++
}

// Elapsed returns total accumulated time
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// T returns elapsed seconds for the motion functions
func (c *Clock) T() float32 {
	return Seconds(c.elapsed)
}

// Frames returns the number of advanced frames
func (c *Clock) Frames() int64 {
	return c.frames
}
