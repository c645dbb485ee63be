// Package app implements the main loop: window, input, views and frame pacing.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/app/states"
	"github.com/Faultbox/lattice-hero/internal/config"
	"github.com/Faultbox/lattice-hero/internal/engine/audio"
	"github.com/Faultbox/lattice-hero/internal/engine/debug"
	"github.com/Faultbox/lattice-hero/internal/engine/input"
	"github.com/Faultbox/lattice-hero/internal/engine/lighting"
	"github.com/Faultbox/lattice-hero/internal/engine/renderer"
	"github.com/Faultbox/lattice-hero/internal/engine/window"
	"github.com/Faultbox/lattice-hero/internal/hero"
	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Title is the window title.
const Title = "Lattice"

// App is the running application.
type App struct {
	config     *config.Config
	running    bool
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	audio      *audio.Manager
	states     *states.Manager
	screenshot *debug.ScreenshotCapture
	log        *zap.Logger
}

// New creates the window, GL state and audio, and schedules the hero view.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HiDPI:      cfg.Graphics.HiDPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer comes after the window, since the OpenGL context must exist.
	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: lighting.HexColor(hero.Background),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.window.OnResize(func(w, h int) {
		if w > 0 && h > 0 {
			a.renderer.Resize(w, h)
		}
	})

	a.input = input.New()
	a.screenshot = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "lattice")
	a.initAudio()

	a.states = states.NewManager()
	deps := states.Deps{
		Manager:      a.states,
		Surface:      a.window,
		HeroOptions:  []hero.Option{hero.WithClock(a.window.Now)},
		WarpDuration: hero.WarpDuration,
		Card:         a.renderer,
	}
	if a.audio != nil {
		deps.Sound = a.audio
	}
	a.states.Change(states.NewHeroState(deps))

	a.log.Info("initialized")
	return a, nil
}

// initAudio opens the speaker. Failure leaves the app silent.
func (a *App) initAudio() {
	m := audio.New(a.config.Audio.Volume, a.config.Audio.Muted)
	if err := m.Init(); err != nil {
		a.log.Warn("audio unavailable", zap.Error(err))
		return
	}
	if path := a.config.Audio.WarpSound; path != "" {
		if err := m.LoadWarpFile(path); err != nil {
			a.log.Warn("using synthesized warp sound", zap.String("path", path), zap.Error(err))
		}
	}
	a.audio = m
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	fps := debug.NewFPSCounter(lastTime, time.Second)

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now
		// Mounts and warps started below share this frame's timestamp.
		a.window.BeginFrame(now)

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			if err := a.handleEvent(event); err != nil {
				return err
			}
		}

		// 2. Update views
		if err := a.states.Update(dt.Seconds()); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render: mounted scenes draw from their frame callbacks
		a.renderer.Begin()
		a.window.RunFrame(now)
		if err := a.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present
		a.window.SwapBuffers()

		if rate, ok := fps.Tick(now); ok && a.config.Debug.LogFPS {
			a.log.Debug("fps",
				zap.Float64("fps", rate),
				zap.Duration("dt", dt),
			)
		}
	}

	return nil
}

func (a *App) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		a.window.SyncSize()
	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_F12 {
			a.captureScreenshot()
			return nil
		}
	}
	if err := a.states.HandleAction(actionFor(event)); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

// actionFor maps raw input onto navigation.
func actionFor(e input.Event) states.Action {
	switch e.Type {
	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			return states.ActionNavigate
		}
	case input.EventKeyDown:
		if e.Repeat {
			return states.ActionNone
		}
		switch e.Key {
		case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER, sdl.SCANCODE_SPACE:
			return states.ActionNavigate
		case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_BACKSPACE:
			return states.ActionBack
		}
	}
	return states.ActionNone
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	label := ""
	if cur := a.states.Current(); cur != nil {
		label = cur.Name()
	}
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h, label)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up resources in reverse order of creation.
func (a *App) Close() {
	a.log.Info("closing")

	if a.states != nil {
		if err := a.states.Close(); err != nil {
			a.log.Warn("closing view", zap.Error(err))
		}
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
