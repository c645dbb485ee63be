package animation

import (
	"time"
)

// Phase is the controller's current behavior.
type Phase int

const (
	// Idle advances rotation at a constant speed every frame.
	Idle Phase = iota
	// Warping runs the timed transition.
	Warping
	// Held keeps the final warped look after a warp resolved. Idle rotation
	// does not resume until Reset.
	Held
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Warping:
		return "warping"
	case Held:
		return "held"
	default:
		return "unknown"
	}
}

// State is the per-mount mutable scene state.
type State struct {
	Phase    Phase
	Rotation float64 // lattice Y rotation in radians, frozen while warping
	Params   Params
	Overlay  float64 // fade overlay opacity in [0,1]
	Visible  bool    // false while the surface has zero area
}

// Transition describes one warp run.
type Transition struct {
	Start        time.Time
	Duration     time.Duration
	From, To     Params
	BaseRotation float64

	done chan struct{}
}

func newTransition(start time.Time, d time.Duration, from, to Params, base float64) *Transition {
	return &Transition{
		Start:        start,
		Duration:     d,
		From:         from,
		To:           to,
		BaseRotation: base,
		done:         make(chan struct{}),
	}
}

// Progress returns linear progress t = min(1, elapsed/duration) at now.
func (tr *Transition) Progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(tr.Start)) / float64(tr.Duration))
}

// Done is closed once the transition reaches t = 1.
func (tr *Transition) Done() <-chan struct{} {
	return tr.done
}

// stepIdle advances rotation by speed*dt.
func stepIdle(s *State, speed float64, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.Rotation += speed * dt.Seconds()
}

// stepWarp applies the transition at now and reports whether it finished.
func stepWarp(s *State, tr *Transition, now time.Time) bool {
	t := tr.Progress(now)
	e := EaseInOutCubic(t)

	s.Params = Lerp(tr.From, tr.To, e)
	s.Overlay = OverlayOpacity(t)
	s.Rotation = tr.BaseRotation
	return t >= 1
}
