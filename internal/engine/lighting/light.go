// Package lighting describes the scene lights and writes them to shader
// uniforms.
package lighting

import (
	"fmt"
	gomath "math"
)

// Kind identifies the light variant.
type Kind int

const (
	Directional Kind = iota
	Point
	Spot
)

func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spot:
		return "spot"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Uniforms is the subset of a shader program lights write to.
type Uniforms interface {
	SetVec3(name string, v [3]float32)
	SetFloat(name string, v float32)
}

// Light is a Phong light. Which fields are meaningful depends on Kind:
// Directional uses Direction; Point uses Position and attenuation; Spot
// uses all of them plus the cutoffs.
type Light struct {
	Kind Kind

	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32

	Direction [3]float32
	Position  [3]float32

	// Attenuation 1 / (Constant + Linear*d + Quadratic*d^2).
	Constant  float32
	Linear    float32
	Quadratic float32

	// Cosines of the inner and outer cone angles.
	CutOff      float32
	OuterCutOff float32
}

// NewDirectional returns a sun-like light shining along direction.
func NewDirectional(direction [3]float32) Light {
	return Light{
		Kind:      Directional,
		Direction: direction,
		Ambient:   [3]float32{0.05, 0.05, 0.05},
		Diffuse:   [3]float32{0.4, 0.4, 0.4},
		Specular:  [3]float32{0.5, 0.5, 0.5},
	}
}

// NewPoint returns a light at position with a ~50 unit falloff.
func NewPoint(position [3]float32) Light {
	return Light{
		Kind:      Point,
		Position:  position,
		Ambient:   [3]float32{0.05, 0.05, 0.05},
		Diffuse:   [3]float32{0.8, 0.8, 0.8},
		Specular:  [3]float32{1, 1, 1},
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// NewSpot returns a cone light at position pointing along direction, with
// a 12.5° inner and 17.5° outer cone.
func NewSpot(position, direction [3]float32) Light {
	return Light{
		Kind:        Spot,
		Position:    position,
		Direction:   direction,
		Diffuse:     [3]float32{1, 1, 1},
		Specular:    [3]float32{1, 1, 1},
		Constant:    1,
		Linear:      0.09,
		Quadratic:   0.032,
		CutOff:      cosDeg(12.5),
		OuterCutOff: cosDeg(17.5),
	}
}

// WithColors returns a copy of l with the given Phong terms.
func (l Light) WithColors(ambient, diffuse, specular [3]float32) Light {
	l.Ambient, l.Diffuse, l.Specular = ambient, diffuse, specular
	return l
}

// Apply writes the light to the uniform struct called name, e.g. "dirLight".
func (l Light) Apply(u Uniforms, name string) {
	switch l.Kind {
	case Directional:
		u.SetVec3(name+".direction", l.Direction)
		l.applyColors(u, name)
	case Point:
		u.SetVec3(name+".position", l.Position)
		l.applyColors(u, name)
		l.applyAttenuation(u, name)
	case Spot:
		u.SetVec3(name+".position", l.Position)
		u.SetVec3(name+".direction", l.Direction)
		l.applyColors(u, name)
		u.SetFloat(name+".cutOff", l.CutOff)
		u.SetFloat(name+".outerCutOff", l.OuterCutOff)
		l.applyAttenuation(u, name)
	}
}

func (l Light) applyColors(u Uniforms, name string) {
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
}

func (l Light) applyAttenuation(u Uniforms, name string) {
	u.SetFloat(name+".constant", l.Constant)
	u.SetFloat(name+".linear", l.Linear)
	u.SetFloat(name+".quadratic", l.Quadratic)
}

func cosDeg(deg float64) float32 {
	return float32(gomath.Cos(deg * gomath.Pi / 180))
}
