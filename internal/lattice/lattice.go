// Package lattice builds the 13-node icosahedral wireframe shown on the hero view:
// a center point, the 12 vertices of a regular icosahedron, and the edges that
// connect them.
package lattice

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"github.com/Faultbox/lattice-hero/pkg/math"
)

// VertexCount is the number of lattice vertices, center included.
const VertexCount = 13

// Center is the index of the center vertex.
const Center = 0

// DefaultTolerance is the edge-detection tolerance used when none is configured.
const DefaultTolerance = 1e-3

var (
	// ErrInvalidRadius is returned for a radius that is not strictly positive.
	ErrInvalidRadius = errors.New("lattice: radius must be > 0")
	// ErrInvalidTolerance is returned for a tolerance that is not strictly positive.
	ErrInvalidTolerance = errors.New("lattice: tolerance must be > 0")
)

// Edge connects two vertex indices. A is always the smaller index.
type Edge struct {
	A, B int
}

// Lattice is an immutable vertex and edge set.
type Lattice struct {
	Radius    float64
	Tolerance float64

	vertices [VertexCount]math.Vec3
	edges    []Edge
	tiers    []float64
}

// Build generates the lattice for the given radius and tolerance.
// Tolerance is an absolute distance in the same units as radius.
func Build(radius, tolerance float64) (*Lattice, error) {
	if !(radius > 0) || gomath.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if !(tolerance > 0) || gomath.IsInf(tolerance, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tolerance)
	}

	l := &Lattice{Radius: radius, Tolerance: tolerance}

	outer := icosahedron(radius)
	for i, p := range outer {
		l.vertices[i+1] = math.Vec3{X: float32(p[0]), Y: float32(p[1]), Z: float32(p[2])}
	}

	dist := func(i, j int) float64 {
		a, b := outer[i-1], outer[j-1]
		dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
		return gomath.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	var all []float64
	for i := 1; i < VertexCount; i++ {
		for j := i + 1; j < VertexCount; j++ {
			all = append(all, dist(i, j))
		}
	}
	l.tiers = collapseTiers(all, tolerance)

	use := l.tiers
	if len(use) > 2 {
		use = use[:2]
	}

	l.edges = make([]Edge, 0, 72)
	for i := 1; i < VertexCount; i++ {
		l.edges = append(l.edges, Edge{A: Center, B: i})
	}
	for i := 1; i < VertexCount; i++ {
		for j := i + 1; j < VertexCount; j++ {
			d := dist(i, j)
			for _, tier := range use {
				if gomath.Abs(d-tier) <= tolerance {
					l.edges = append(l.edges, Edge{A: i, B: j})
					break
				}
			}
		}
	}

	return l, nil
}

// icosahedron returns the 12 golden-ratio vertices scaled to radius.
func icosahedron(radius float64) [12][3]float64 {
	phi := (1 + gomath.Sqrt(5)) / 2

	raw := [12][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	for i, p := range raw {
		n := gomath.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		raw[i] = [3]float64{p[0] / n * radius, p[1] / n * radius, p[2] / n * radius}
	}
	return raw
}

// collapseTiers sorts distances and merges values within tolerance of the
// previous tier into it.
func collapseTiers(distances []float64, tolerance float64) []float64 {
	sorted := append([]float64(nil), distances...)
	sort.Float64s(sorted)

	var tiers []float64
	for _, d := range sorted {
		if len(tiers) == 0 || d-tiers[len(tiers)-1] > tolerance {
			tiers = append(tiers, d)
		}
	}
	return tiers
}

// Vertices returns a copy of the vertex positions. Index 0 is the center.
func (l *Lattice) Vertices() []math.Vec3 {
	out := make([]math.Vec3, VertexCount)
	copy(out, l.vertices[:])
	return out
}

// Vertex returns the position of vertex i.
func (l *Lattice) Vertex(i int) math.Vec3 {
	return l.vertices[i]
}

// Edges returns a copy of the edge list.
func (l *Lattice) Edges() []Edge {
	return append([]Edge(nil), l.edges...)
}

// Tiers returns every distinct outer-outer distance found, ascending.
func (l *Lattice) Tiers() []float64 {
	return append([]float64(nil), l.tiers...)
}

// Spokes returns the number of center-to-outer edges.
func (l *Lattice) Spokes() int {
	n := 0
	for _, e := range l.edges {
		if e.A == Center {
			n++
		}
	}
	return n
}

// Degree returns how many edges touch vertex i.
func (l *Lattice) Degree(i int) int {
	n := 0
	for _, e := range l.edges {
		if e.A == i || e.B == i {
			n++
		}
	}
	return n
}
