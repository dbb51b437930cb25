// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// LineVertexShader is the vertex shader for path and trail polylines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for path and trail polylines.
//
//go:embed line.frag
var LineFragmentShader string

// SkyVertexShader is the vertex shader for the sky dome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the sky dome.
//
//go:embed sky.frag
var SkyFragmentShader string
