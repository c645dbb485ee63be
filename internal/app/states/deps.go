package states

import (
	"time"

	"github.com/Faultbox/lattice-hero/internal/hero"
)

// WarpSound plays the warp effect.
type WarpSound interface {
	PlayWarp(d time.Duration) error
}

// CardDrawer draws the content view placeholder.
type CardDrawer interface {
	DrawCard(alpha float32)
}

// Deps are shared by every view.
type Deps struct {
	Manager *Manager
	Surface hero.Surface
	// HeroOptions are passed to every hero mount.
	HeroOptions []hero.Option
	// WarpDuration is the length of the warp sound.
	WarpDuration time.Duration
	Sound        WarpSound
	Card         CardDrawer
}
