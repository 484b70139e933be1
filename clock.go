package fourier

import "math"

// Clock is the animation clock: elapsed time t in seconds, advanced by one
// frame at a time. The zero value is a clock at t = 0.
type Clock struct {
	t      float64
	frames int
}

// Advance moves the clock forward by 1/framerate. Non-positive or
// non-finite rates leave the clock unchanged and report false.
func (c *Clock) Advance(framerate float64) bool {
	if framerate <= 0 || math.IsNaN(framerate) || math.IsInf(framerate, 0) {
		return false
	}
	c.t += 1 / framerate
	c.frames++
	return true
}

// Reset sets the clock back to t = 0.
func (c *Clock) Reset() {
	c.t = 0
	c.frames = 0
}

// Time returns the elapsed time.
func (c *Clock) Time() float64 {
	return c.t
}

// Frames returns the number of successful Advance calls since the last Reset.
func (c *Clock) Frames() int {
	return c.frames
}
