package lighting

import "fmt"

// MaxPointLights is the size of the point light array in the terrain shader.
const MaxPointLights = 4

// Set is the lighting of a scene: one sun plus a few local lights.
type Set struct {
	Sun    Light
	Points []Light
}

// Apply uploads the whole set: the sun as "dirLight", point lights as
// "pointLights[i]" and their count as "numPointLights". Lights beyond
// MaxPointLights are dropped.
func (s *Set) Apply(u Uniforms) {
	s.Sun.Apply(u, "dirLight")

	n := min(len(s.Points), MaxPointLights)
	for i := 0; i < n; i++ {
		s.Points[i].Apply(u, fmt.Sprintf("pointLights[%d]", i))
	}
	u.SetFloat("numPointLights", float32(n))
}
