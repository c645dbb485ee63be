package animation

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Target receives the scene state every frame.
type Target interface {
	// Apply pushes the state into the camera, rig and pipeline.
	Apply(s State)
	// Render draws one frame.
	Render()
}

// Config holds pacing and the warp's start and end looks.
type Config struct {
	RotSpeed     float64 // idle rotation, radians per second
	WarpDuration time.Duration
	Start        Params
	End          Params
}

// DefaultConfig returns the standard hero pacing and warp endpoints.
func DefaultConfig() Config {
	return Config{
		RotSpeed:     0.25,
		WarpDuration: 1000 * time.Millisecond,
		Start: Params{
			FOV:      45,
			Exposure: 1.15,
			Damp:     0.96,
			Bloom:    0.65,
			Scale:    1,
			Spin:     0,
			Opacity:  0.95,
		},
		End: Params{
			FOV:      110,
			Exposure: 1.9,
			Damp:     0.88,
			Bloom:    1.1,
			Scale:    0.3,
			Spin:     4 * math.Pi,
			Opacity:  0.2,
		},
	}
}

// Controller owns the State and switches between idle rotation and warping.
// It is not safe for concurrent use; drive it from the frame loop.
type Controller struct {
	cfg    Config
	state  State
	warp   *Transition
	target Target
	clock  func() time.Time
	log    *zap.Logger
}

// NewController creates an idle controller. clock supplies warp start times;
// nil means time.Now.
func NewController(cfg Config, target Target, clock func() time.Time) *Controller {
	if clock == nil {
		clock = time.Now
	}
	c := &Controller{
		cfg:    cfg,
		target: target,
		clock:  clock,
		log:    logger.Named("animation"),
	}
	c.state = State{Phase: Idle, Params: cfg.Start, Visible: true}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Step advances one frame. dt drives idle rotation; now drives the warp.
func (c *Controller) Step(now time.Time, dt time.Duration) {
	var finished bool
	switch c.state.Phase {
	case Idle:
		stepIdle(&c.state, c.cfg.RotSpeed, dt)
	case Warping:
		finished = stepWarp(&c.state, c.warp, now)
	}

	c.target.Apply(c.state)
	if c.state.Visible {
		c.target.Render()
	}

	if finished {
		c.finishWarp(now)
	}
}

// WarpOut starts the warp and returns a channel closed when it completes.
// While a warp is running it returns that warp's channel without restarting it.
func (c *Controller) WarpOut() <-chan struct{} {
	if c.state.Phase == Warping {
		c.log.Debug("warp already running")
		return c.warp.Done()
	}

	from := c.state.Params
	to := c.cfg.End
	to.Spin = from.Spin + c.cfg.End.Spin

	c.warp = newTransition(c.clock(), c.cfg.WarpDuration, from, to, c.state.Rotation)
	c.state.Phase = Warping
	c.log.Info("warp started",
		zap.Duration("duration", c.cfg.WarpDuration),
		zap.Float64("rotation", c.state.Rotation),
	)
	return c.warp.Done()
}

func (c *Controller) finishWarp(now time.Time) {
	tr := c.warp
	c.warp = nil
	c.state.Phase = Held
	close(tr.done)
	c.log.Info("warp finished", zap.Duration("elapsed", now.Sub(tr.Start)))
}

// Warping reports whether a warp is in flight.
func (c *Controller) Warping() bool {
	return c.state.Phase == Warping
}

// Reset returns to idle with the start look, keeping the current rotation.
// An in-flight warp is abandoned and its channel never closes.
func (c *Controller) Reset() {
	c.warp = nil
	c.state.Phase = Idle
	c.state.Params = c.cfg.Start
	c.state.Overlay = 0
}

// Resize records whether the surface has any area to draw on.
func (c *Controller) Resize(width, height int) {
	visible := width > 0 && height > 0
	if visible != c.state.Visible {
		c.log.Debug("surface visibility changed", zap.Bool("visible", visible))
	}
	c.state.Visible = visible
}
