package terrain

import (
	"github.com/Faultbox/trailwalk/pkg/math"
)

// degenerateArea is the cross-product length below which a triangle is
// treated as having no facing direction.
const degenerateArea = 1e-6

// ComputeNormals recomputes smooth per-vertex normals in place.
//
// Each triangle's unit face normal (v1-v0)x(v2-v0) is added to its three
// vertices and the sums are normalized. Every face weighs the same no matter
// its size. Zero-area faces contribute nothing, and a vertex left without any
// contribution points straight up.
func ComputeNormals(vertices []Vertex, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = [3]float32{}
	}

	n := uint32(len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}

		v0 := math.V3(vertices[i0].Position)
		v1 := math.V3(vertices[i1].Position)
		v2 := math.V3(vertices[i2].Position)

		face := v1.Sub(v0).Cross(v2.Sub(v0))
		if face.Length() < degenerateArea {
			continue
		}
		face = face.Normalize()

		for _, idx := range [3]uint32{i0, i1, i2} {
			vertices[idx].Normal = math.V3(vertices[idx].Normal).Add(face).Array()
		}
	}

	for i := range vertices {
		vertices[i].Normal = normalize(vertices[i].Normal)
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math.V3(v).Length()
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
