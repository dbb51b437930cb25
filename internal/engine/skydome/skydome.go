// Package skydome generates the textured hemisphere drawn behind the scene.
package skydome

import (
	gomath "math"
)

// Default dome parameters.
const (
	DefaultBands  = 50
	DefaultRadius = 250.0
)

// FloatsPerVertex is the interleaved stride: x, y, z, u, v.
const FloatsPerVertex = 5

// Mesh is an interleaved position/texcoord mesh.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

// Generate builds the upper half of a UV sphere. latBands divides the full
// sphere from pole to pole, so latBands/2 rings cover the hemisphere;
// lonBands divides each ring. Each ring repeats its first vertex at the end
// so the texture seam has its own u=0 column.
func Generate(latBands, lonBands int, radius float32) Mesh {
	if latBands < 2 || lonBands < 1 {
		return Mesh{}
	}

	rings := latBands / 2
	stride := lonBands + 1

	vertices := make([]float32, 0, (rings+1)*stride*FloatsPerVertex)
	for lat := 0; lat <= rings; lat++ {
		theta := float64(lat) * gomath.Pi / float64(latBands)
		sinTheta, cosTheta := gomath.Sin(theta), gomath.Cos(theta)

		for lon := 0; lon <= lonBands; lon++ {
			phi := float64(lon) * 2 * gomath.Pi / float64(lonBands)
			sinPhi, cosPhi := gomath.Sin(phi), gomath.Cos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)
			u := 1 - float32(lon)/float32(lonBands)
			v := 1 - float32(lat)/float32(latBands)

			vertices = append(vertices, radius*x, radius*y, radius*z, u, v)
		}
	}

	indices := make([]uint32, 0, rings*lonBands*6)
	for lat := 0; lat < rings; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint32(lat*stride + lon)
			second := first + uint32(stride)
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices}
}
