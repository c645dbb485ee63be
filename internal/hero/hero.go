// Package hero mounts the lattice hero scene into a host surface, keeps it in
// step with the surface's frames and size, and tears it down again.
package hero

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/animation"
	"github.com/Faultbox/lattice-hero/internal/lattice"
	"github.com/Faultbox/lattice-hero/internal/logger"
)

// ErrNoSurface is returned when mounting without a surface.
var ErrNoSurface = errors.New("hero: no render surface")

// Surface is the host the scene draws into.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	// OnResize registers a size observer.
	OnResize(fn func(width, height int)) (remove func())
	// RequestFrames registers a per-frame callback.
	RequestFrames(fn func(now time.Time)) (cancel func())
}

// Renderer draws the scene for one mount.
type Renderer interface {
	animation.Target
	Resize(width, height int)
	Dispose()
}

// RendererFactory builds a Renderer for a lattice at the given size.
type RendererFactory func(cfg Config, l *lattice.Lattice, width, height int) (Renderer, error)

// Hero holds mount configuration. Creating one touches no GPU state.
type Hero struct {
	cfg     Config
	clock   func() time.Time
	factory RendererFactory
	log     *zap.Logger
}

// Option configures a Hero.
type Option func(*Hero)

// WithClock sets the wall clock used for frame deltas and warp timing.
func WithClock(clock func() time.Time) Option {
	return func(h *Hero) {
		h.clock = clock
	}
}

// WithRendererFactory replaces the OpenGL renderer.
func WithRendererFactory(f RendererFactory) Option {
	return func(h *Hero) {
		h.factory = f
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(h *Hero) {
		h.cfg = cfg
	}
}

// New creates a Hero.
func New(opts ...Option) *Hero {
	h := &Hero{
		cfg:     DefaultConfig(),
		clock:   time.Now,
		factory: NewGLRenderer,
		log:     logger.Named("hero"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount is shorthand for New(opts...).Attach(surface).
func Mount(surface Surface, opts ...Option) (*Handle, error) {
	return New(opts...).Attach(surface)
}

// Attach builds the lattice, the renderer and the animation controller, then
// subscribes to the surface's frames and resizes.
func (h *Hero) Attach(surface Surface) (*Handle, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	l, err := lattice.Build(h.cfg.Radius, h.cfg.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("build lattice: %w", err)
	}

	width, height := surface.Size()
	r, err := h.factory(h.cfg, l, width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	hd := &Handle{
		renderer:   r,
		controller: animation.NewController(h.cfg.Animation, r, h.clock),
		last:       h.clock(),
		log:        h.log,
	}
	hd.controller.Resize(width, height)
	hd.removeResize = surface.OnResize(hd.resize)
	hd.cancelFrames = surface.RequestFrames(hd.frame)

	h.log.Info("hero mounted",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("vertices", len(l.Vertices())),
		zap.Int("edges", len(l.Edges())),
	)
	return hd, nil
}

// Handle is one mounted scene.
type Handle struct {
	renderer   Renderer
	controller *animation.Controller
	last       time.Time

	removeResize func()
	cancelFrames func()
	closed       bool
	log          *zap.Logger
}

func (hd *Handle) frame(now time.Time) {
	dt := now.Sub(hd.last)
	hd.last = now
	hd.controller.Step(now, dt)
}

func (hd *Handle) resize(width, height int) {
	hd.renderer.Resize(width, height)
	hd.controller.Resize(width, height)
}

// WarpOut starts the warp. The returned channel closes when it completes;
// it may never close if Cleanup runs first.
func (hd *Handle) WarpOut() <-chan struct{} {
	return hd.controller.WarpOut()
}

// State returns a snapshot of the scene state.
func (hd *Handle) State() animation.State {
	return hd.controller.State()
}

// Cleanup stops frames, removes the resize observer and releases the
// renderer. Later calls do nothing.
func (hd *Handle) Cleanup() {
	if hd.closed {
		return
	}
	hd.closed = true

	hd.cancelFrames()
	hd.removeResize()
	hd.renderer.Dispose()
	hd.log.Info("hero unmounted", zap.Stringer("phase", hd.controller.State().Phase))
}

// Closed reports whether Cleanup has run.
func (hd *Handle) Closed() bool {
	return hd.closed
}
