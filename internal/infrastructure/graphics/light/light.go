// Package light holds the lighting parameters the engine applies to a shader
// program each frame. The scene core never computes lighting itself; it hands
// this collaborator a program and the camera position.
package light

import (
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/infrastructure/graphics/shader"
)

// Directional is a sun-style light: direction only, no attenuation.
type Directional struct {
	Direction       mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
}

// DefaultSun returns a white directional light angled down from above.
func DefaultSun() Directional {
	return Directional{
		Direction:       mgl32.Vec3{0.5, -1, -0.5}.Normalize(),
		Color:           mgl32.Vec3{1, 1, 1},
		Intensity:       0.8,
		AmbientStrength: 0.2,
	}
}

// Lighting is the full lighting state for a frame.
type Lighting struct {
	Sun Directional
}

// Apply writes the lighting uniforms and the viewer position into the
// program. The program must already be in use.
func (l Lighting) Apply(p *shader.Program, viewPos mgl32.Vec3) {
	p.SetVec3("sun.direction", l.Sun.Direction)
	p.SetVec3("sun.color", l.Sun.Color)
	p.SetFloat("sun.intensity", l.Sun.Intensity)
	p.SetFloat("sun.ambientStrength", l.Sun.AmbientStrength)
	p.SetVec3("viewPos", viewPos)
}
