// Package animation drives the hero scene over time: a continuous idle
// rotation and a one-shot, wall-clock-timed warp that interpolates every
// visual parameter at once.
package animation

// Params are the interpolatable visual parameters of the scene.
type Params struct {
	FOV      float64 // camera vertical field of view, degrees
	Exposure float64 // tone-mapping exposure
	Damp     float64 // afterimage decay in [0,1); the warp lowers it
	Bloom    float64 // bloom strength
	Scale    float64 // lattice uniform scale
	Spin     float64 // lattice spin about the view axis, radians
	Opacity  float64 // line and node opacity
}

// Lerp blends a towards b by e. e=0 returns a and e=1 returns b exactly.
func Lerp(a, b Params, e float64) Params {
	mix := func(x, y float64) float64 { return x*(1-e) + y*e }
	return Params{
		FOV:      mix(a.FOV, b.FOV),
		Exposure: mix(a.Exposure, b.Exposure),
		Damp:     mix(a.Damp, b.Damp),
		Bloom:    mix(a.Bloom, b.Bloom),
		Scale:    mix(a.Scale, b.Scale),
		Spin:     mix(a.Spin, b.Spin),
		Opacity:  mix(a.Opacity, b.Opacity),
	}
}

// EaseInOutCubic maps linear progress in [0,1] onto an ease-in-out curve.
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// FadeStart is the progress after which the black overlay starts to appear.
const FadeStart = 0.7

// OverlayOpacity returns the fade overlay opacity for linear progress t.
// It stays 0 up to FadeStart, then rises linearly to 1 at t=1.
func OverlayOpacity(t float64) float64 {
	if t <= FadeStart {
		return 0
	}
	return clamp01((t - FadeStart) / (1 - FadeStart))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
