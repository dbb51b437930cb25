// Package world holds the simulation state: terrain, planned path, walker
// and the trail it leaves. Nothing here touches the GPU.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/config"
	"github.com/Faultbox/trailwalk/internal/engine/camera"
	"github.com/Faultbox/trailwalk/internal/engine/lighting"
	"github.com/Faultbox/trailwalk/internal/engine/terrain"
	"github.com/Faultbox/trailwalk/internal/logger"
	"github.com/Faultbox/trailwalk/internal/trail"
	"github.com/Faultbox/trailwalk/internal/track"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// FallbackExtent is the size of the flat plane a track is projected onto
// when there is no terrain.
const FallbackExtent = 100

// Walker is the first-person viewer standing on the terrain.
type Walker struct {
	Camera    *camera.FirstPerson
	EyeHeight float32
}

// Options configures a World built from already-loaded data.
type Options struct {
	EyeHeight      float32
	TrailThreshold float32
	Speed          float32
	Sensitivity    float32
	FOV            float32
	Yaw            float32
}

// DefaultOptions matches the shipped configuration.
func DefaultOptions() Options {
	return Options{
		EyeHeight:      2,
		TrailThreshold: trail.DefaultThreshold,
		Speed:          camera.DefaultSpeed,
		Sensitivity:    camera.DefaultSensitivity,
		FOV:            camera.DefaultZoom,
		Yaw:            camera.DefaultYaw,
	}
}

// World is the whole simulation state. Terrain may be nil and Path may be
// empty when their sources failed to load.
type World struct {
	Terrain *terrain.Mesh
	Path    track.Path
	Trail   *trail.Recorder
	Walker  Walker
	Lights  lighting.Set

	guide *Guide
}

// New places the walker at the start of path, raised by the eye height,
// and starts the trail there.
func New(mesh *terrain.Mesh, path track.Path, opts Options) *World {
	start := path.Start()
	start.Y += opts.EyeHeight

	cam := camera.NewFirstPerson(start)
	cam.Speed = opts.Speed
	cam.Sensitivity = opts.Sensitivity
	cam.Zoom = opts.FOV
	cam.SetOrientation(opts.Yaw, cam.Pitch)

	return &World{
		Terrain: mesh,
		Path:    path,
		Trail:   trail.NewRecorder(opts.TrailThreshold, cam.Position),
		Walker:  Walker{Camera: cam, EyeHeight: opts.EyeHeight},
		Lights:  lighting.Set{Sun: lighting.NewDirectional([3]float32{-0.7, -1, -0.7})},
		guide:   NewGuide(walkable(mesh, path.Points)),
	}
}

// walkable pulls waypoints into the rectangle the walker is clamped to.
// Projection places the extreme samples on the far terrain edge, one cell
// past the last walkable one.
func walkable(mesh *terrain.Mesh, points []math.Vec3) []math.Vec3 {
	if mesh == nil {
		return points
	}
	maxX, maxZ := float32(mesh.Width()-1), float32(mesh.Height()-1)
	out := make([]math.Vec3, len(points))
	for i, p := range points {
		p.X = math.Clamp(p.X, 0, maxX)
		p.Z = math.Clamp(p.Z, 0, maxZ)
		out[i] = p
	}
	return out
}

// Load builds the world from the files named in cfg. A heightmap or track
// that fails to load is logged and left out, unless cfg.World.Strict is
// set, in which case the first such error is returned.
func Load(cfg *config.Config) (*World, error) {
	mesh, err := loadTerrain(cfg)
	if err != nil {
		if cfg.World.Strict {
			return nil, err
		}
		logger.Error("terrain unavailable, continuing without it", zap.Error(err))
	}

	path, err := loadPath(cfg, mesh)
	if err != nil {
		if cfg.World.Strict {
			return nil, err
		}
		logger.Error("track unavailable, continuing without it", zap.Error(err))
	}

	w := New(mesh, path, Options{
		EyeHeight:      cfg.Camera.EyeHeight,
		TrailThreshold: cfg.Trail.Threshold,
		Speed:          cfg.Camera.Speed,
		Sensitivity:    cfg.Camera.Sensitivity,
		FOV:            cfg.Camera.FOV,
		Yaw:            cfg.Camera.Yaw,
	})
	w.Lights = lightsFromConfig(cfg.Light)

	logger.Info("world loaded",
		zap.Bool("terrain", mesh != nil),
		zap.Int("path_points", path.Len()),
		zap.Int("point_lights", len(w.Lights.Points)),
		zap.Float32("start_x", w.Walker.Camera.Position.X),
		zap.Float32("start_z", w.Walker.Camera.Position.Z),
	)
	return w, nil
}

func lightsFromConfig(lc config.LightConfig) lighting.Set {
	set := lighting.Set{
		Sun: lighting.NewDirectional(lc.Direction).
			WithColors(lc.Ambient, lc.Diffuse, lc.Specular),
	}

	points := lc.Points
	if len(points) > lighting.MaxPointLights {
		logger.Warn("too many point lights, extra ones ignored",
			zap.Int("configured", len(points)),
			zap.Int("max", lighting.MaxPointLights),
		)
		points = points[:lighting.MaxPointLights]
	}
	for _, pc := range points {
		l := lighting.NewPoint(pc.Position)
		if pc.Diffuse != ([3]float32{}) {
			l.Diffuse = pc.Diffuse
		}
		if pc.Specular != ([3]float32{}) {
			l.Specular = pc.Specular
		}
		set.Points = append(set.Points, l)
	}
	return set
}

func loadTerrain(cfg *config.Config) (*terrain.Mesh, error) {
	field, err := terrain.LoadHeightField(cfg.Assets.Heightmap, terrain.DecodeOptions{
		Scale:        cfg.Terrain.HeightScale,
		FlipVertical: cfg.Terrain.FlipVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}

	mesh, err := terrain.Build(field, terrain.MeshOptions{UVScale: cfg.Terrain.UVScale})
	if err != nil {
		return nil, fmt.Errorf("building terrain mesh: %w", err)
	}

	lo, hi := field.MinMax()
	logger.Named("terrain").Info("terrain loaded",
		zap.String("path", cfg.Assets.Heightmap),
		zap.Int("width", field.Width()),
		zap.Int("height", field.Height()),
		zap.Float32("min_height", lo),
		zap.Float32("max_height", hi),
	)
	return mesh, nil
}

func loadPath(cfg *config.Config, mesh *terrain.Mesh) (track.Path, error) {
	samples, err := track.LoadGPX(cfg.Assets.GPX)
	if err != nil {
		return track.Path{}, fmt.Errorf("loading track: %w", err)
	}

	width, height := float32(FallbackExtent), float32(FallbackExtent)
	var heightAt track.HeightFunc
	if mesh != nil {
		width, height = float32(mesh.Width()), float32(mesh.Height())
		heightAt = mesh.HeightAt
	}

	projector := &track.Projector{
		VerticalOffset:   cfg.Path.VerticalOffset,
		RejectDegenerate: cfg.Path.RejectDegenerate,
	}
	points, err := projector.Project(samples, width, height, heightAt)
	if err != nil {
		return track.Path{}, fmt.Errorf("projecting track: %w", err)
	}
	b := track.BoundsOf(samples)
	logger.Named("track").Info("track projected",
		zap.String("path", cfg.Assets.GPX),
		zap.Int("samples", len(samples)),
		zap.Float64("min_lat", b.MinLat),
		zap.Float64("max_lat", b.MaxLat),
		zap.Float64("min_lon", b.MinLon),
		zap.Float64("max_lon", b.MaxLon),
	)
	return track.Path{Points: points}, nil
}

// Step advances the simulation by dt seconds: applies controls (or the
// guide), keeps the walker on the terrain and feeds the trail. It reports
// whether a trail point was recorded.
func (w *World) Step(c camera.Controls, dt float32) bool {
	cam := w.Walker.Camera

	if w.guide.Active() && c.Moving() {
		w.guide.Stop()
	}
	cam.Apply(c, dt)
	w.guide.Advance(cam, dt)

	w.settle()
	return w.Trail.Observe(cam.Position)
}

// settle clamps the walker to the grid and stands it on the ground.
func (w *World) settle() {
	cam := w.Walker.Camera
	if w.Terrain != nil {
		cam.Position.X = math.Clamp(cam.Position.X, 0, float32(w.Terrain.Width()-1))
		cam.Position.Z = math.Clamp(cam.Position.Z, 0, float32(w.Terrain.Height()-1))
	}
	cam.Position.Y = w.GroundAt(cam.Position.X, cam.Position.Z) + w.Walker.EyeHeight
}

// GroundAt returns the terrain height at (x, z), or 0 without terrain.
func (w *World) GroundAt(x, z float32) float32 {
	if w.Terrain == nil {
		return 0
	}
	return w.Terrain.HeightAt(x, z)
}

// ToggleGuide starts or stops walking the planned path and reports whether
// the guide is now active.
func (w *World) ToggleGuide() bool {
	if w.guide.Active() {
		w.guide.Stop()
		return false
	}
	return w.guide.Start(w.Walker.Camera.Position)
}

// Guiding reports whether the walker is following the planned path.
func (w *World) Guiding() bool { return w.guide.Active() }
