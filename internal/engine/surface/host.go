// Package surface tracks a drawing surface's size and the resize and
// frame callbacks registered against it.
package surface

import (
	"sort"
	"time"
)

// Host tracks a surface size and the callbacks registered against it:
// resize observers and per-frame callbacks. The render loop drives it with
// BeginFrame, DispatchResize and RunFrame. It is not safe for concurrent use.
type Host struct {
	width, height int
	frameTime     time.Time

	nextID int
	resize map[int]func(w, h int)
	frames map[int]func(now time.Time)
}

// NewHost returns a host with the given initial size.
func NewHost(width, height int) *Host {
	return &Host{
		width:  width,
		height: height,
		resize: make(map[int]func(w, h int)),
		frames: make(map[int]func(now time.Time)),
	}
}

// Size returns the current surface size in pixels.
func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// OnResize registers fn to run after each size change. The returned function
// removes it and may be called more than once.
func (h *Host) OnResize(fn func(w, h int)) (remove func()) {
	id := h.register()
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

// RequestFrames registers fn to run once per RunFrame until cancelled.
func (h *Host) RequestFrames(fn func(now time.Time)) (cancel func()) {
	id := h.register()
	h.frames[id] = fn
	return func() { delete(h.frames, id) }
}

// DispatchResize records the new size and notifies observers if it changed.
func (h *Host) DispatchResize(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	for _, id := range sortedIDs(h.resize) {
		if fn, ok := h.resize[id]; ok {
			fn(width, height)
		}
	}
}

// BeginFrame records the timestamp of the frame being prepared. Work done
// before RunFrame in the same iteration reads it through Now.
func (h *Host) BeginFrame(now time.Time) {
	h.frameTime = now
}

// Now returns the current frame timestamp, or the wall clock before the
// first frame.
func (h *Host) Now() time.Time {
	if h.frameTime.IsZero() {
		return time.Now()
	}
	return h.frameTime
}

// RunFrame invokes every frame callback in registration order.
// Callbacks cancelled during the frame are not invoked.
func (h *Host) RunFrame(now time.Time) {
	h.frameTime = now
	for _, id := range sortedIDs(h.frames) {
		if fn, ok := h.frames[id]; ok {
			fn(now)
		}
	}
}

// Observers returns the number of registered resize observers.
func (h *Host) Observers() int {
	return len(h.resize)
}

// FrameCallbacks returns the number of registered frame callbacks.
func (h *Host) FrameCallbacks() int {
	return len(h.frames)
}

func (h *Host) register() int {
	h.nextID++
	return h.nextID
}

func sortedIDs[F any](m map[int]F) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
