package hero

import "time"

// Framing. Camera heights are measured from the stage.
const (
	// StageOffsetY lifts the stage group that holds the lattice.
	StageOffsetY = 1.1
	// LookAtOffsetY is where the camera aims, relative to the stage.
	LookAtOffsetY = -0.2
	// CameraLift raises the camera above the stage.
	CameraLift     = 1.1
	CameraDistance = 3.25
	Near           = 0.1
	Far            = 100.0
)

// Pacing.
const (
	// RotSpeed is the idle rotation in radians per second.
	RotSpeed     = 0.25
	WarpDuration = 1000 * time.Millisecond
)

// Lattice look.
const (
	LineColor = 0x374151
	NodeColor = 0x6b7280
	// NodeRadius is the world-space radius of a node sphere.
	NodeRadius = 0.028
	Radius     = 0.95
	Tolerance  = 1e-3
	Glow       = 1.0
)

// Post-processing defaults.
const (
	BloomThreshold = 0.85
	BloomRadius    = 0.4
	Background     = 0x0b0b0b
)

// Lighting.
const (
	AmbientColor     = 0xffffff
	AmbientIntensity = 0.25
	KeyColor         = 0xffffff
	KeyIntensity     = 0.6
)

// KeyPosition places the directional light; it shines towards the origin.
var KeyPosition = [3]float32{3, 4, 2}
