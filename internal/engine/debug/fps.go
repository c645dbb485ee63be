package debug

import "time"

// FPSCounter counts frames over fixed reporting windows.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
}

// NewFPSCounter starts counting at now.
func NewFPSCounter(now time.Time, window time.Duration) *FPSCounter {
	return &FPSCounter{window: window, start: now}
}

// Tick records a frame. Once a window has elapsed it returns the frame rate
// over that window and starts a new one.
func (c *FPSCounter) Tick(now time.Time) (fps float64, ok bool) {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return 0, false
	}
	fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return fps, true
}
