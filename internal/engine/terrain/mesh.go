package terrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/logger"
)

// Mesh holds the terrain mesh data ready for GPU upload, plus the height
// field it was built from for height queries.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds

	field *HeightField
}

// Build creates a terrain mesh from a height field: one vertex per grid
// cell and two triangles per grid quad.
func Build(field *HeightField, opts MeshOptions) (*Mesh, error) {
	if field == nil || field.width <= 0 || field.height <= 0 {
		return nil, ErrEmptyField
	}

	width, height := field.width, field.height
	vertices := make([]Vertex, 0, width*height)

	// Initialize bounds
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for z := range height {
		for x := range width {
			pos := [3]float32{float32(x), field.HeightAt(x, z), float32(z)}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{
					gridUV(x, width) * opts.UVScale,
					gridUV(z, height) * opts.UVScale,
				},
			})
		}
	}

	indices := make([]uint32, 0, (width-1)*(height-1)*6)
	for z := 0; z < height-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(z*width + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*width + x)
			bottomRight := bottomLeft + 1

			// Counter-clockwise seen from above (+Y).
			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	ComputeNormals(vertices, indices)

	logger.Debug("terrain mesh built",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", len(indices)/3),
	)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
		field:    field,
	}, nil
}

// gridUV maps a grid coordinate to 0..1 across the axis. A single-sample
// axis maps to 0.
func gridUV(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}

// Width returns the number of grid columns.
func (m *Mesh) Width() int { return m.field.width }

// Height returns the number of grid rows.
func (m *Mesh) Height() int { return m.field.height }

// Field returns the height field the mesh was built from.
func (m *Mesh) Field() *HeightField { return m.field }

// HeightAt returns the terrain height under the world position (x, z).
// Coordinates are truncated toward zero to pick a grid cell; there is no
// interpolation, so height is constant across each unit cell.
func (m *Mesh) HeightAt(x, z float32) float32 {
	return m.field.HeightAt(int(x), int(z))
}

// VertexAt returns the vertex for grid cell (x, z).
func (m *Mesh) VertexAt(x, z int) (Vertex, error) {
	if x < 0 || x >= m.field.width || z < 0 || z >= m.field.height {
		return Vertex{}, fmt.Errorf("cell (%d,%d) outside %dx%d grid", x, z, m.field.width, m.field.height)
	}
	return m.Vertices[z*m.field.width+x], nil
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
