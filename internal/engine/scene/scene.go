// Package scene owns every GPU resource of the hiking scene and draws it
// in order: terrain, planned path, walked trail, optional debug bounds,
// then the sky dome behind them.
package scene

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/engine/debug"
	"github.com/Faultbox/trailwalk/internal/engine/lighting"
	"github.com/Faultbox/trailwalk/internal/engine/scene/shaders"
	"github.com/Faultbox/trailwalk/internal/engine/shader"
	"github.com/Faultbox/trailwalk/internal/engine/skydome"
	"github.com/Faultbox/trailwalk/internal/engine/terrain"
	"github.com/Faultbox/trailwalk/internal/logger"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// Config contains scene colours.
type Config struct {
	ClearColor  [3]float32
	PathColor   [3]float32
	TrailColor  [3]float32
	BoundsColor [3]float32
	TrailWidth  float32
}

// DefaultConfig returns water-blue background, cyan path, magenta trail.
func DefaultConfig() Config {
	return Config{
		ClearColor:  [3]float32{0.1, 0.7, 0.9},
		PathColor:   [3]float32{0, 1, 1},
		TrailColor:  [3]float32{1, 0, 1},
		BoundsColor: [3]float32{1, 1, 0},
		TrailWidth:  5,
	}
}

// Assets is the CPU-side data the scene uploads. Any field may be nil.
type Assets struct {
	Terrain *terrain.Mesh
	Diffuse *image.RGBA
	Grass   *image.RGBA
	Sky     *image.RGBA
	Path    []math.Vec3
}

// Scene manages the GPU side of the world.
type Scene struct {
	config Config

	lineProgram *shader.Program

	terrain *TerrainRenderer
	path    *LineRenderer
	trail   *LineRenderer
	bounds  *LineRenderer
	sky     *SkyRenderer

	// ShowBounds draws the terrain bounding box.
	ShowBounds bool
}

// New uploads assets. Must be called with a current GL context.
func New(cfg Config, a Assets) (*Scene, error) {
	s := &Scene{config: cfg}

	var err error
	s.lineProgram, err = shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, err
	}

	s.terrain, err = NewTerrainRenderer(a.Terrain, a.Diffuse, a.Grass)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.sky, err = NewSkyRenderer(skydome.Generate(skydome.DefaultBands, skydome.DefaultBands, skydome.DefaultRadius), a.Sky)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.path = NewLineRenderer(s.lineProgram, LineStrip, cfg.PathColor, false)
	s.path.Upload(a.Path)

	s.trail = NewLineRenderer(s.lineProgram, LineStrip, cfg.TrailColor, true)
	s.trail.Width = cfg.TrailWidth

	s.bounds = NewLineRenderer(s.lineProgram, LineSegments, cfg.BoundsColor, false)
	if a.Terrain != nil {
		s.bounds.Upload(debug.BoxWireframe(a.Terrain.Bounds.Min, a.Terrain.Bounds.Max))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1)

	logger.Info("scene uploaded",
		zap.Bool("terrain", a.Terrain != nil),
		zap.Int("path_points", s.path.Count()),
	)
	return s, nil
}

// UpdateTrail re-uploads the walked trail.
func (s *Scene) UpdateTrail(points []math.Vec3) {
	s.trail.Upload(points)
}

// Render clears the framebuffer and draws one frame.
func (s *Scene) Render(view, projection math.Mat4, viewPos math.Vec3, lights *lighting.Set) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.terrain.Render(view, projection, viewPos, lights)
	s.path.Render(view, projection)
	s.trail.Render(view, projection)
	if s.ShowBounds {
		s.bounds.Render(view, projection)
	}
	s.sky.Render(view, projection)
}

// Close releases every GL resource the scene owns.
func (s *Scene) Close() {
	for _, lr := range []*LineRenderer{s.path, s.trail, s.bounds} {
		if lr != nil {
			lr.Close()
		}
	}
	if s.sky != nil {
		s.sky.Close()
	}
	if s.terrain != nil {
		s.terrain.Close()
	}
	if s.lineProgram != nil {
		s.lineProgram.Close()
	}
}
