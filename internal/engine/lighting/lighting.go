// Package lighting provides the light sources used by the hero scene.
package lighting

import "math"

// Ambient is a uniform light applied to every lit surface.
type Ambient struct {
	Color     [3]float32
	Intensity float32
}

// Directional is a light infinitely far away shining along a fixed direction.
type Directional struct {
	Color     [3]float32
	Intensity float32
	// Direction points from the surface towards the light, normalized.
	Direction [3]float32
}

// NewDirectional creates a directional light placed at position and aimed at
// the origin. Only the direction of position matters.
func NewDirectional(color [3]float32, intensity float32, position [3]float32) Directional {
	return Directional{
		Color:     color,
		Intensity: intensity,
		Direction: normalize(position),
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2]))
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{float32(float64(v[0]) / l), float32(float64(v[1]) / l), float32(float64(v[2]) / l)}
}

// Scaled returns the light color premultiplied by intensity, ready for a shader uniform.
func (a Ambient) Scaled() [3]float32 {
	return scale(a.Color, a.Intensity)
}

// Scaled returns the light color premultiplied by intensity, ready for a shader uniform.
func (d Directional) Scaled() [3]float32 {
	return scale(d.Color, d.Intensity)
}

func scale(c [3]float32, k float32) [3]float32 {
	return [3]float32{c[0] * k, c[1] * k, c[2] * k}
}

// HexColor converts a 0xRRGGBB value into normalized RGB.
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
