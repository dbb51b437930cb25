package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/trailwalk/internal/engine/shader"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// LineMode selects how points are joined.
type LineMode uint32

const (
	// LineStrip joins consecutive points into one polyline.
	LineStrip LineMode = gl.LINE_STRIP
	// LineSegments draws independent segments from point pairs.
	LineSegments LineMode = gl.LINES
)

// LineRenderer draws a flat-coloured set of points. The program is shared
// and owned by the caller; the vertex buffer belongs to the renderer.
type LineRenderer struct {
	program *shader.Program

	vao      uint32
	vbo      uint32
	count    int32
	capacity int

	mode  LineMode
	usage uint32

	Color [3]float32
	Width float32
}

// NewLineRenderer allocates the vertex array and buffer. dynamic selects a
// buffer meant for frequent re-upload.
func NewLineRenderer(program *shader.Program, mode LineMode, color [3]float32, dynamic bool) *LineRenderer {
	lr := &LineRenderer{
		program: program,
		mode:    mode,
		usage:   gl.STATIC_DRAW,
		Color:   color,
		Width:   1,
	}
	if dynamic {
		lr.usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.GenBuffers(1, &lr.vbo)

	gl.BindVertexArray(lr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(unsafe.Sizeof(math.Vec3{})), 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return lr
}

// Upload replaces the points. The buffer only grows; a shorter upload
// reuses it.
func (lr *LineRenderer) Upload(points []math.Vec3) {
	lr.count = int32(len(points))
	if len(points) == 0 {
		return
	}

	size := len(points) * int(unsafe.Sizeof(math.Vec3{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	if len(points) > lr.capacity {
		// Double so an append-only trail reallocates rarely.
		lr.capacity = max(len(points), lr.capacity*2)
		gl.BufferData(gl.ARRAY_BUFFER, lr.capacity*int(unsafe.Sizeof(math.Vec3{})), nil, lr.usage)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&points[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Count returns the number of uploaded points.
func (lr *LineRenderer) Count() int { return int(lr.count) }

// Render draws the points.
func (lr *LineRenderer) Render(view, projection math.Mat4) {
	if lr.count < 2 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("projection", projection)
	lr.program.SetMat4("view", view)
	lr.program.SetMat4("model", math.Identity())
	lr.program.SetVec3("color", lr.Color)

	if lr.Width != 1 {
		gl.LineWidth(lr.Width)
	}
	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(uint32(lr.mode), 0, lr.count)
	gl.BindVertexArray(0)
	if lr.Width != 1 {
		gl.LineWidth(1)
	}
}

// Close releases the vertex array and buffer.
func (lr *LineRenderer) Close() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
}
