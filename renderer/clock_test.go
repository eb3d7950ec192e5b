package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockStartsAtZero(t *testing.T) {
	now := 42.5
	clock := NewFrameClock(func() float64 { return now })

	assert.Equal(t, 0.0, clock.Elapsed())
}

func TestFrameClockElapsed(t *testing.T) {
	now := 100.0
	clock := NewFrameClock(func() float64 { return now })

	now = 100.25
	assert.InDelta(t, 0.25, clock.Elapsed(), 1e-12)

	now = 103.0
	assert.InDelta(t, 3.0, clock.Elapsed(), 1e-12)
}

func TestFrameClockMonotonic(t *testing.T) {
	now := 7.0
	clock := NewFrameClock(func() float64 { return now })

	prev := clock.Elapsed()
	assert.GreaterOrEqual(t, prev, 0.0)

	for i := 0; i < 1000; i++ {
		now += 1.0 / 60.0
		elapsed := clock.Elapsed()
		assert.GreaterOrEqual(t, elapsed, prev)
		prev = elapsed
	}
}
