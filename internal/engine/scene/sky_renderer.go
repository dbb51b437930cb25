package scene

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/engine/scene/shaders"
	"github.com/Faultbox/trailwalk/internal/engine/shader"
	"github.com/Faultbox/trailwalk/internal/engine/skydome"
	"github.com/Faultbox/trailwalk/internal/logger"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// SkyRenderer draws a textured dome centred on the viewer.
type SkyRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	texture    uint32
}

// NewSkyRenderer uploads the dome mesh and texture.
func NewSkyRenderer(mesh skydome.Mesh, tex *image.RGBA) (*SkyRenderer, error) {
	program, err := shader.New("sky", shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, err
	}

	sr := &SkyRenderer{program: program}
	// Repeat around the horizon, clamp toward the zenith to hide the seam.
	sr.texture = textureOrWhite(tex, gl.REPEAT, gl.CLAMP_TO_EDGE)

	if len(mesh.Indices) == 0 {
		return sr, nil
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.GenBuffers(1, &sr.vbo)
	gl.GenBuffers(1, &sr.ebo)

	gl.BindVertexArray(sr.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	stride := int32(skydome.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	sr.indexCount = int32(len(mesh.Indices))

	logger.Debug("sky dome uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", len(mesh.Indices)),
	)

	return sr, nil
}

// Render draws the dome behind everything else. Translation is stripped
// from view so the sky never gets closer.
func (sr *SkyRenderer) Render(view, projection math.Mat4) {
	if sr.vao == 0 {
		return
	}

	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	sr.program.Use()
	sr.program.SetMat4("view", view.WithoutTranslation())
	sr.program.SetMat4("projection", projection)
	sr.program.SetInt("skyTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sr.texture)

	gl.BindVertexArray(sr.vao)
	gl.DrawElements(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}

// Close releases all GL resources.
func (sr *SkyRenderer) Close() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.ebo != 0 {
		gl.DeleteBuffers(1, &sr.ebo)
		sr.ebo = 0
	}
	deleteTexture(&sr.texture)
	sr.program.Close()
}
