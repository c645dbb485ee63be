package hero

import (
	"github.com/Faultbox/lattice-hero/internal/animation"
	"github.com/Faultbox/lattice-hero/internal/engine/lighting"
	"github.com/Faultbox/lattice-hero/internal/engine/postfx"
	"github.com/Faultbox/lattice-hero/internal/engine/scene"
)

// Config gathers everything one mount needs. DefaultConfig builds it from the
// package constants.
type Config struct {
	Radius    float64
	Tolerance float64

	Scene     scene.Config
	Style     scene.Style
	Effects   postfx.Settings
	Animation animation.Config
}

// DefaultConfig returns the standard hero scene.
func DefaultConfig() Config {
	anim := animation.DefaultConfig()
	anim.RotSpeed = RotSpeed
	anim.WarpDuration = WarpDuration

	return Config{
		Radius:    Radius,
		Tolerance: Tolerance,
		Scene: scene.Config{
			StageOffsetY:   StageOffsetY,
			LookAtOffsetY:  LookAtOffsetY,
			CameraLift:     CameraLift,
			CameraDistance: CameraDistance,
			FOV:            float32(anim.Start.FOV),
			Near:           Near,
			Far:            Far,
			Ambient: lighting.Ambient{
				Color:     lighting.HexColor(AmbientColor),
				Intensity: AmbientIntensity,
			},
			Sun: lighting.NewDirectional(lighting.HexColor(KeyColor), KeyIntensity, KeyPosition),
		},
		Style: scene.Style{
			LineColor:  lighting.HexColor(LineColor),
			NodeColor:  lighting.HexColor(NodeColor),
			NodeRadius: NodeRadius,
			Glow:       Glow,
		},
		Effects: postfx.Settings{
			BloomStrength:  float32(anim.Start.Bloom),
			BloomThreshold: BloomThreshold,
			BloomRadius:    BloomRadius,
			Damp:           float32(anim.Start.Damp),
			Exposure:       float32(anim.Start.Exposure),
			Background:     lighting.HexColor(Background),
		},
		Animation: anim,
	}
}
