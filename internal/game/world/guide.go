package world

import (
	gomath "math"

	"github.com/Faultbox/trailwalk/internal/engine/camera"
	"github.com/Faultbox/trailwalk/pkg/math"
)

// Guide walks the camera along the planned path at walking speed.
type Guide struct {
	points []math.Vec3
	index  int
	active bool
}

// NewGuide creates an idle guide for points.
func NewGuide(points []math.Vec3) *Guide {
	return &Guide{points: points}
}

// Start begins following from the path point horizontally nearest to from.
// It reports false when there is nothing to follow.
func (g *Guide) Start(from math.Vec3) bool {
	if len(g.points) == 0 {
		return false
	}

	best, bestDist := 0, float32(gomath.MaxFloat32)
	for i, p := range g.points {
		if d := horizontal(p.Sub(from)).Length(); d < bestDist {
			best, bestDist = i, d
		}
	}
	g.index = best
	g.active = true
	return true
}

// Stop ends guided walking.
func (g *Guide) Stop() {
	g.active = false
}

// Active reports whether the guide is walking.
func (g *Guide) Active() bool { return g.active }

// Advance moves cam speed*dt along the path, passing through as many
// waypoints as the distance allows, and turns it to face the direction of
// travel. Height is left to the caller. The guide stops at the last point.
func (g *Guide) Advance(cam *camera.FirstPerson, dt float32) {
	if !g.active {
		return
	}

	budget := cam.Speed * dt
	for budget > 0 && g.index < len(g.points) {
		target := g.points[g.index]
		delta := horizontal(target.Sub(cam.Position))
		dist := delta.Length()

		if dist > 0 {
			yaw := float32(gomath.Atan2(float64(delta.Z), float64(delta.X)) * 180 / gomath.Pi)
			cam.SetOrientation(yaw, cam.Pitch)
		}

		if dist <= budget {
			cam.Position.X, cam.Position.Z = target.X, target.Z
			budget -= dist
			g.index++
			continue
		}

		cam.Position = cam.Position.Add(delta.Scale(budget / dist))
		budget = 0
	}

	if g.index >= len(g.points) {
		g.index = len(g.points) - 1
		g.active = false
	}
}

func horizontal(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.X, Z: v.Z}
}
