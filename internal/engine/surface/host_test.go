package surface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHostSize(t *testing.T) {
	h := NewHost(800, 600)
	w, ht := h.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, ht)
}

func TestHostDispatchResize(t *testing.T) {
	h := NewHost(800, 600)

	var got [][2]int
	remove := h.OnResize(func(w, ht int) { got = append(got, [2]int{w, ht}) })

	h.DispatchResize(800, 600) // unchanged
	h.DispatchResize(1024, 768)
	h.DispatchResize(0, 768)
	assert.Equal(t, [][2]int{{1024, 768}, {0, 768}}, got)

	remove()
	remove()
	h.DispatchResize(640, 480)
	assert.Len(t, got, 2)
	assert.Equal(t, 0, h.Observers())

	w, ht := h.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, ht)
}

func TestHostRunFrameOrder(t *testing.T) {
	h := NewHost(1, 1)

	var order []string
	h.RequestFrames(func(time.Time) { order = append(order, "a") })
	h.RequestFrames(func(time.Time) { order = append(order, "b") })
	h.RequestFrames(func(time.Time) { order = append(order, "c") })

	h.RunFrame(time.Now())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestHostRunFramePassesTime(t *testing.T) {
	h := NewHost(1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var seen time.Time
	h.RequestFrames(func(ts time.Time) { seen = ts })
	h.RunFrame(now)
	assert.Equal(t, now, seen)
}

func TestHostCancelDuringFrame(t *testing.T) {
	h := NewHost(1, 1)

	var calls int
	var cancelSecond func()
	h.RequestFrames(func(time.Time) { cancelSecond() })
	cancelSecond = h.RequestFrames(func(time.Time) { calls++ })

	h.RunFrame(time.Now())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, h.FrameCallbacks())
}

func TestHostCancel(t *testing.T) {
	h := NewHost(1, 1)

	var calls int
	cancel := h.RequestFrames(func(time.Time) { calls++ })
	h.RunFrame(time.Now())
	cancel()
	h.RunFrame(time.Now())

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.FrameCallbacks())
}

func TestHostNowFollowsFrame(t *testing.T) {
	h := NewHost(1, 1)
	assert.False(t, h.Now().IsZero())

	frame := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h.BeginFrame(frame)
	assert.Equal(t, frame, h.Now())

	next := frame.Add(16 * time.Millisecond)
	h.RunFrame(next)
	assert.Equal(t, next, h.Now())
}
