// Package camera provides the first-person walking camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/trailwalk/pkg/math"
)

// Default camera values.
const (
	DefaultYaw         = 90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 5.0
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MinZoom  = 20.0
	MaxZoom  = 80.0
	MaxPitch = 89.0

	NearPlane = 0.1
	FarPlane  = 1000.0
)

// Controls is one frame of player intent, already decoupled from the
// windowing system.
type Controls struct {
	Forward, Backward bool
	Left, Right       bool

	// Mouse deltas for this frame. LookY is positive when looking up.
	LookX, LookY float32

	// Scroll wheel delta; positive narrows the field of view.
	Scroll float32
}

// Moving reports whether any movement key is held.
func (c Controls) Moving() bool {
	return c.Forward || c.Backward || c.Left || c.Right
}

// FirstPerson is an Euler-angle camera that walks on the horizontal plane.
// Angles are in degrees.
type FirstPerson struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse unit
	Zoom        float32 // vertical field of view, degrees
}

// NewFirstPerson creates a camera at position with default orientation and
// settings.
func NewFirstPerson(position math.Vec3) *FirstPerson {
	c := &FirstPerson{
		Position:    position,
		WorldUp:     math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Apply runs one frame of controls.
func (c *FirstPerson) Apply(ctl Controls, dt float32) {
	if ctl.LookX != 0 || ctl.LookY != 0 {
		c.Look(ctl.LookX, ctl.LookY)
	}
	if ctl.Scroll != 0 {
		c.ZoomBy(ctl.Scroll)
	}

	var forward, strafe float32
	if ctl.Forward {
		forward++
	}
	if ctl.Backward {
		forward--
	}
	if ctl.Right {
		strafe++
	}
	if ctl.Left {
		strafe--
	}
	c.Move(forward, strafe, dt)
}

// Move walks along the ground plane. forward and strafe are in -1..1;
// pitch does not change walking speed.
func (c *FirstPerson) Move(forward, strafe, dt float32) {
	if forward == 0 && strafe == 0 {
		return
	}

	dir := math.Vec3{X: c.Front.X, Y: 0, Z: c.Front.Z}.Normalize()
	if dir.Length() == 0 {
		return
	}
	side := dir.Cross(c.WorldUp).Normalize()

	velocity := c.Speed * dt
	c.Position = c.Position.
		Add(dir.Scale(forward * velocity)).
		Add(side.Scale(strafe * velocity))
}

// Look turns the camera by mouse deltas. Pitch is held within ±89 degrees
// so the view never flips.
func (c *FirstPerson) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch+dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// SetOrientation points the camera at the given yaw and pitch in degrees.
// Pitch is clamped like Look.
func (c *FirstPerson) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = math.Clamp(pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ZoomBy narrows the field of view by dy degrees.
func (c *FirstPerson) ZoomBy(dy float32) {
	c.Zoom = math.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *FirstPerson) Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.Zoom), aspect, NearPlane, FarPlane)
}

func (c *FirstPerson) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
