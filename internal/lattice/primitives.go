package lattice

// LineVertices returns the edge endpoints packed for a GL_LINES draw.
// Format: [x, y, z] per endpoint, two endpoints per edge.
func (l *Lattice) LineVertices() []float32 {
	out := make([]float32, 0, len(l.edges)*6)
	for _, e := range l.edges {
		a, b := l.vertices[e.A], l.vertices[e.B]
		out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return out
}

// PointVertices returns every vertex packed for a GL_POINTS draw.
// Format: [x, y, z] per vertex.
func (l *Lattice) PointVertices() []float32 {
	out := make([]float32, 0, VertexCount*3)
	for _, v := range l.vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// LineVertexCount is the number of endpoints LineVertices produces.
func (l *Lattice) LineVertexCount() int {
	return len(l.edges) * 2
}
