// Package camera provides a free-flying first person camera. It owns no GPU
// state; the engine reads its view matrix and position each frame.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a view-relative movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	defaultYaw   = -90.0 // looking down -Z
	defaultPitch = 0.0
	defaultSpeed = 5.0
	defaultSens  = 0.1
	defaultFOV   = 45.0

	pitchLimit = 89.0
	minFOV     = 1.0
	maxFOV     = 45.0
)

// Camera holds position and orientation as yaw/pitch degrees, with the
// front/right/up basis derived from them.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	MoveSpeed   float32
	Sensitivity float32
	fov         float32
}

// New returns a camera at the given position looking down -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         defaultYaw,
		pitch:       defaultPitch,
		MoveSpeed:   defaultSpeed,
		Sensitivity: defaultSens,
		fov:         defaultFOV,
	}
	c.updateVectors()
	return c
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// SetPosition moves the camera.
func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p }

// Front returns the normalized view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Move translates the camera along a view-relative direction, scaled by
// MoveSpeed and dt seconds.
func (c *Camera) Move(dir Movement, dt float32) {
	velocity := c.MoveSpeed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

// Look applies a mouse delta in screen pixels. Pitch is clamped to avoid
// flipping over the poles.
func (c *Camera) Look(dx, dy float32) {
	c.yaw += dx * c.Sensitivity
	c.pitch += dy * c.Sensitivity

	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
	c.updateVectors()
}

// Zoom applies a scroll delta to the field of view, clamped to [1, 45].
func (c *Camera) Zoom(dy float32) {
	c.fov -= dy
	if c.fov < minFOV {
		c.fov = minFOV
	}
	if c.fov > maxFOV {
		c.fov = maxFOV
	}
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
