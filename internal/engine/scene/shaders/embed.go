// Package shaders provides embedded GLSL sources for the lattice mesh.
package shaders

import _ "embed"

// LineVertexShader transforms lattice edge endpoints.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader colors edges with an HDR tint so bloom can pick them up.
//
//go:embed line.frag
var LineFragmentShader string

// NodeVertexShader transforms lattice vertices into sized point sprites.
//
//go:embed node.vert
var NodeVertexShader string

// NodeFragmentShader shades point sprites as small lit spheres.
//
//go:embed node.frag
var NodeFragmentShader string
