package track

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/logger"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// Projection errors.
var (
	ErrEmptySampleSet   = errors.New("no samples to project")
	ErrDegenerateBounds = errors.New("track bounds have zero extent")
)

// HeightFunc returns the terrain height under world position (x, z).
type HeightFunc func(x, z float32) float32

// Bounds is the geographic bounding box of a sample set.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// BoundsOf returns the bounding box of samples. It panics on an empty slice.
func BoundsOf(samples []GeoSample) Bounds {
	b := Bounds{
		MinLat: samples[0].Latitude, MaxLat: samples[0].Latitude,
		MinLon: samples[0].Longitude, MaxLon: samples[0].Longitude,
	}
	for _, s := range samples[1:] {
		b.MinLat = gomath.Min(b.MinLat, s.Latitude)
		b.MaxLat = gomath.Max(b.MaxLat, s.Latitude)
		b.MinLon = gomath.Min(b.MinLon, s.Longitude)
		b.MaxLon = gomath.Max(b.MaxLon, s.Longitude)
	}
	return b
}

// Projector maps geographic samples onto the terrain grid.
//
// Longitude and latitude are rescaled independently so the track exactly
// fills the terrain rectangle; the geographic aspect ratio is not kept.
type Projector struct {
	// VerticalOffset lifts every point above the terrain surface.
	VerticalOffset float32

	// RejectDegenerate makes a zero-extent axis an error. Otherwise the
	// axis uses a scale of 1.
	RejectDegenerate bool
}

// DefaultProjector places the path half a unit above the ground and
// tolerates degenerate tracks.
func DefaultProjector() *Projector {
	return &Projector{VerticalOffset: 0.5}
}

// Project converts samples into world-space points in input order:
// x from longitude, z from latitude, y from heightAt plus the offset.
func (p *Projector) Project(samples []GeoSample, width, height float32, heightAt HeightFunc) ([]math.Vec3, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySampleSet
	}

	b := BoundsOf(samples)
	scaleX, err := p.axisScale("longitude", width, b.MaxLon-b.MinLon)
	if err != nil {
		return nil, err
	}
	scaleZ, err := p.axisScale("latitude", height, b.MaxLat-b.MinLat)
	if err != nil {
		return nil, err
	}

	points := make([]math.Vec3, len(samples))
	for i, s := range samples {
		x := float32((s.Longitude - b.MinLon) * scaleX)
		z := float32((s.Latitude - b.MinLat) * scaleZ)
		var y float32
		if heightAt != nil {
			y = heightAt(x, z)
		}
		points[i] = math.Vec3{X: x, Y: y + p.VerticalOffset, Z: z}
	}

	logger.Debug("track projected",
		zap.Int("points", len(points)),
		zap.Float64("min_lat", b.MinLat),
		zap.Float64("max_lat", b.MaxLat),
		zap.Float64("min_lon", b.MinLon),
		zap.Float64("max_lon", b.MaxLon),
	)
	return points, nil
}

func (p *Projector) axisScale(axis string, extent float32, span float64) (float64, error) {
	if span > 0 {
		return float64(extent) / span, nil
	}
	if p.RejectDegenerate {
		return 0, fmt.Errorf("%w: %s range is zero", ErrDegenerateBounds, axis)
	}
	logger.Warn("track has zero extent on one axis, using unit scale", zap.String("axis", axis))
	return 1, nil
}

// Path is a projected track ready for rendering.
type Path struct {
	Points []math.Vec3
}

// Start returns the first point, or the origin for an empty path.
func (p Path) Start() math.Vec3 {
	if len(p.Points) == 0 {
		return math.Vec3{}
	}
	return p.Points[0]
}

// Len returns the number of points.
func (p Path) Len() int { return len(p.Points) }
