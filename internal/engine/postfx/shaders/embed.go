// Package shaders provides embedded GLSL sources for the post-processing passes.
package shaders

import _ "embed"

// FullscreenVertexShader emits a single oversized triangle covering the viewport.
//
//go:embed fullscreen.vert
var FullscreenVertexShader string

// LuminosityFragmentShader keeps only pixels brighter than the bloom threshold.
//
//go:embed luminosity.frag
var LuminosityFragmentShader string

// BlurFragmentShader is a separable 9-tap gaussian blur.
//
//go:embed blur.frag
var BlurFragmentShader string

// BloomCompositeFragmentShader adds the blurred highlights back onto the scene.
//
//go:embed bloom_composite.frag
var BloomCompositeFragmentShader string

// AfterimageFragmentShader blends the new frame with the decayed previous one.
//
//go:embed afterimage.frag
var AfterimageFragmentShader string

// OutputFragmentShader applies exposure, ACES tone mapping and gamma.
//
//go:embed output.frag
var OutputFragmentShader string

// OverlayFragmentShader fills the screen with translucent black.
//
//go:embed overlay.frag
var OverlayFragmentShader string
