package renderer

// FrameClock owns the animation's start timestamp. It is captured exactly
// once, when the clock is built, and every frame derives its elapsed seconds
// from it. The time source is injected so the clock can be driven by
// glfw.GetTime in production and by a fake in tests.
type FrameClock struct {
	start float64
	now   func() float64
}

// NewFrameClock captures the current time from now as the start of the
// animation.
func NewFrameClock(now func() float64) *FrameClock {
	return &FrameClock{
		start: now(),
		now:   now,
	}
}

// Elapsed returns the seconds since the clock was created. With a monotonic
// time source the result starts at 0 and never decreases.
func (c *FrameClock) Elapsed() float64 {
	return c.now() - c.start
}
