package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, m, m.Mul(Identity()))
}

func TestTranslateThenScale(t *testing.T) {
	// Scale applies first, then the translation.
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := m.TransformVec3(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{12, 24, 36}, got)
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) becomes approximately (0,0,-1)
	assert.InDelta(t, 0, float64(got.X), 1e-5)
	assert.InDelta(t, 0, float64(got.Y), 1e-5)
	assert.InDelta(t, -1, float64(got.Z), 1e-5)
}

func TestRotateYKeepsAxis(t *testing.T) {
	got := RotateY(1.234).TransformVec3(Vec3{0, 2, 0})
	assert.InDelta(t, 2, float64(got.Y), 1e-6)
}

func TestRotateZ90(t *testing.T) {
	got := RotateZ(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})

	assert.InDelta(t, 0, float64(got.X), 1e-5)
	assert.InDelta(t, 1, float64(got.Y), 1e-5)
	assert.InDelta(t, 0, float64(got.Z), 1e-5)
}

func TestRotateZFullTurnIsIdentity(t *testing.T) {
	got := RotateZ(float32(4 * math.Pi)).TransformVec3(Vec3{0.3, -0.7, 0.5})
	assert.InDelta(t, 0.3, float64(got.X), 1e-5)
	assert.InDelta(t, -0.7, float64(got.Y), 1e-5)
	assert.InDelta(t, 0.5, float64(got.Z), 1e-5)
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	square := Perspective(1, 1, 0.1, 100)
	wide := Perspective(1, 2, 0.1, 100)
	assert.InDelta(t, float64(square[0])/2, float64(wide[0]), 1e-6)
	assert.Equal(t, square[5], wide[5])
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 1, 5}
	m := LookAt(eye, Vec3{0, 1, 0}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	assert.InDelta(t, 0, float64(got.Length()), 1e-5)

	// The target ends up straight ahead on -Z.
	target := m.TransformVec3(Vec3{0, 1, 0})
	assert.InDelta(t, -5, float64(target.Z), 1e-5)
	assert.InDelta(t, 0, float64(target.X), 1e-5)
}
