// Package terrain turns a grayscale heightmap into a height-queryable,
// smooth-shaded triangle mesh.
package terrain

import "errors"

// Terrain construction errors.
var (
	ErrDecode     = errors.New("heightmap decode failed")
	ErrEmptyField = errors.New("heightmap has no samples")
)

// Vertex is one mesh vertex. Field order matches the GPU attribute layout:
// position at location 0, normal at 1, texcoord at 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the middle of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// MeshOptions controls mesh generation.
type MeshOptions struct {
	// UVScale multiplies the normalized (0..1) grid coordinate to get the
	// texture coordinate. Values beyond 1 tile the texture; negative values
	// also mirror it.
	UVScale float32
}

// DefaultMeshOptions returns the options the simulator ships with.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{UVScale: -2}
}

// DecodeOptions controls how image bytes become height samples.
type DecodeOptions struct {
	Scale        float32 // height of a white (255) pixel in world units
	FlipVertical bool    // image row 0 becomes the last grid row
}

// DefaultDecodeOptions returns 0..20 world units with the image flipped so
// that the bottom row of the picture is grid row 0.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Scale: 20, FlipVertical: true}
}
