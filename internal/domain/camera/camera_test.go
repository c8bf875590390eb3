package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNew_LooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	f := c.Front()
	assert.InDelta(t, 0.0, f.X(), 1e-5)
	assert.InDelta(t, 0.0, f.Y(), 1e-5)
	assert.InDelta(t, -1.0, f.Z(), 1e-5)
}

func TestMove_ForwardFollowsFront(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.MoveSpeed = 2

	c.Move(Forward, 0.5)

	assert.InDelta(t, -1.0, c.Position().Z(), 1e-5)

	c.Move(Backward, 0.5)
	assert.InDelta(t, 0.0, c.Position().Z(), 1e-5)
}

func TestMove_StrafeIsPerpendicular(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.MoveSpeed = 1

	c.Move(Right, 1)

	assert.InDelta(t, 1.0, c.Position().X(), 1e-5)
	assert.InDelta(t, 0.0, c.Position().Z(), 1e-5)
}

func TestLook_PitchClamped(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Sensitivity = 1

	c.Look(0, 500)

	// Front must never reach straight up.
	assert.Less(t, c.Front().Y(), float32(1.0))
	assert.InDelta(t, 0.9998, c.Front().Y(), 1e-3) // sin(89 degrees)
}

func TestZoom_Clamped(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.Zoom(100)
	assert.InDelta(t, 1.0, c.FOV(), 1e-6)

	c.Zoom(-100)
	assert.InDelta(t, 45.0, c.FOV(), 1e-6)
}

func TestViewMatrix_TransformsLookTargetToViewAxis(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5})

	v := c.ViewMatrix()
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, v)

	// The origin sits 5 units down the view -Z axis.
	assert.InDelta(t, 0.0, p.X(), 1e-5)
	assert.InDelta(t, 0.0, p.Y(), 1e-5)
	assert.InDelta(t, -5.0, p.Z(), 1e-5)
}
