package lighting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDirectionalNormalizesPosition(t *testing.T) {
	d := NewDirectional([3]float32{1, 1, 1}, 0.6, [3]float32{3, 4, 2})

	l := math.Sqrt(29)
	assert.InDelta(t, 3/l, d.Direction[0], 1e-6)
	assert.InDelta(t, 4/l, d.Direction[1], 1e-6)
	assert.InDelta(t, 2/l, d.Direction[2], 1e-6)
	assert.Equal(t, float32(0.6), d.Intensity)
}

func TestNewDirectionalAtOriginPointsUp(t *testing.T) {
	d := NewDirectional([3]float32{1, 1, 1}, 1, [3]float32{})
	assert.Equal(t, [3]float32{0, 1, 0}, d.Direction)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, [3]float32{1, 0, 0}, HexColor(0xff0000))
	assert.Equal(t, [3]float32{0, 0, 1}, HexColor(0x0000ff))
	assert.Equal(t, [3]float32{0, 0, 0}, HexColor(0))
}

func TestScaled(t *testing.T) {
	a := Ambient{Color: [3]float32{1, 0.5, 0}, Intensity: 0.5}
	assert.Equal(t, [3]float32{0.5, 0.25, 0}, a.Scaled())

	d := NewDirectional([3]float32{1, 1, 1}, 2, [3]float32{0, 1, 0})
	assert.Equal(t, [3]float32{2, 2, 2}, d.Scaled())
}
