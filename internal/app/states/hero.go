package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/hero"
	"github.com/Faultbox/lattice-hero/internal/logger"
)

// HeroState shows the lattice and warps out on navigation.
type HeroState struct {
	deps   Deps
	handle *hero.Handle
	done   <-chan struct{}
}

// NewHeroState creates the landing view.
func NewHeroState(deps Deps) *HeroState {
	return &HeroState{deps: deps}
}

// Name implements State.
func (s *HeroState) Name() string { return "hero" }

// Enter mounts the scene.
func (s *HeroState) Enter() error {
	h, err := hero.Mount(s.deps.Surface, s.deps.HeroOptions...)
	if err != nil {
		return fmt.Errorf("mount hero: %w", err)
	}
	s.handle = h
	s.done = nil
	return nil
}

// Exit unmounts the scene.
func (s *HeroState) Exit() error {
	if s.handle != nil {
		s.handle.Cleanup()
		s.handle = nil
	}
	s.done = nil
	return nil
}

// Update switches to the content view once the warp resolved.
func (s *HeroState) Update(dt float64) error {
	if s.done == nil {
		return nil
	}
	select {
	case <-s.done:
		s.done = nil
		s.deps.Manager.Change(NewContentState(s.deps))
	default:
	}
	return nil
}

// Render does nothing; the scene draws from its frame callback.
func (s *HeroState) Render() error {
	return nil
}

// HandleAction starts the warp on navigation.
func (s *HeroState) HandleAction(a Action) error {
	if a != ActionNavigate || s.handle == nil || s.done != nil {
		return nil
	}

	s.done = s.handle.WarpOut()
	if s.deps.Sound != nil {
		if err := s.deps.Sound.PlayWarp(s.deps.WarpDuration); err != nil {
			logger.Warn("warp sound failed", zap.Error(err))
		}
	}
	return nil
}

// Warping reports whether a navigation warp is pending.
func (s *HeroState) Warping() bool {
	return s.done != nil
}
