package scene

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/trailwalk/internal/engine/lighting"
	"github.com/Faultbox/trailwalk/internal/engine/scene/shaders"
	"github.com/Faultbox/trailwalk/internal/engine/shader"
	"github.com/Faultbox/trailwalk/internal/engine/terrain"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// TerrainRenderer owns the GPU copy of a terrain mesh and its two
// textures. GL objects live from construction until Close.
type TerrainRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	diffuseTex uint32
	grassTex   uint32

	Shininess float32
}

// NewTerrainRenderer uploads mesh and textures. A nil mesh yields a
// renderer that draws nothing; a nil texture is replaced by plain white.
func NewTerrainRenderer(mesh *terrain.Mesh, diffuse, grass *image.RGBA) (*TerrainRenderer, error) {
	program, err := shader.New("terrain", shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, err
	}

	tr := &TerrainRenderer{
		program:   program,
		Shininess: 32,
	}
	tr.diffuseTex = textureOrWhite(diffuse, gl.REPEAT, gl.REPEAT)
	tr.grassTex = textureOrWhite(grass, gl.REPEAT, gl.REPEAT)

	if mesh != nil && len(mesh.Indices) > 0 {
		tr.uploadMesh(mesh.Vertices, mesh.Indices)
	}
	return tr, nil
}

func (tr *TerrainRenderer) uploadMesh(vertices []terrain.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(indices))
}

// Render draws the terrain lit by lights.
func (tr *TerrainRenderer) Render(view, projection math.Mat4, viewPos math.Vec3, lights *lighting.Set) {
	if tr.vao == 0 {
		return
	}

	p := tr.program
	p.Use()
	p.SetMat4("projection", projection)
	p.SetMat4("view", view)
	p.SetMat4("model", math.Identity())
	p.SetVec3("viewPos", viewPos.Array())

	if lights != nil {
		lights.Apply(p)
	}

	p.SetInt("material.diffuse", 0)
	p.SetInt("material.grass", 1)
	p.SetFloat("material.shininess", tr.Shininess)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.diffuseTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, tr.grassTex)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
}

// Close releases all GL resources.
func (tr *TerrainRenderer) Close() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	deleteTexture(&tr.diffuseTex)
	deleteTexture(&tr.grassTex)
	tr.program.Close()
}
