// Package scene provides the scene graph: named, transformable wrappers
// around drawables (Object) and the ordered collection that updates and
// renders them with distance culling (Manager).
package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/transform"
)

// Object wraps one drawable with scene-level identity, visibility, animation
// state, and the authoritative transform. The wrapped drawable's own
// transform is overwritten right before each draw.
//
// Objects do not own the drawable's GPU resources; the content library does.
// Dispose only marks the object as dead, so sharing a drawable between
// objects can never double-free.
type Object struct {
	name     string
	visible  bool
	disposed bool

	drawable drawable.Drawable
	tf       transform.Transform

	autoRotate    bool
	rotationSpeed mgl32.Vec3 // degrees per second, per axis
}

// NewObject wraps d in a scene object. If name is empty it falls back to the
// drawable's own name, then to "SceneObject". The initial transform is copied
// from the drawable.
func NewObject(d drawable.Drawable, name string) *Object {
	if name == "" {
		name = d.Name()
	}
	if name == "" {
		name = "SceneObject"
	}
	return &Object{
		name:     name,
		visible:  true,
		drawable: d,
		tf:       *d.Transform(),
	}
}

// Update advances the auto-rotation by dt seconds. Each axis is wrapped back
// into [0, 360); negative rotation speeds wrap correctly too. dt is trusted
// non-negative.
func (o *Object) Update(dt float32) {
	if !o.autoRotate {
		return
	}
	for i := 0; i < 3; i++ {
		o.tf.Rotation[i] = wrapDegrees(o.tf.Rotation[i] + o.rotationSpeed[i]*dt)
	}
}

// wrapDegrees maps an angle into [0, 360). math32.Mod keeps the sign of the
// dividend, so negative angles need one corrective add.
func wrapDegrees(deg float32) float32 {
	m := math32.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// Render pushes this object's transform into the wrapped drawable and
// delegates the draw call. No-op when invisible.
//
// Two objects sharing one drawable (see Clone) overwrite each other's
// transform here; last writer wins. Rendering is single-threaded and
// ordered, so the overwrite is benign.
func (o *Object) Render(program uint32) {
	if !o.visible {
		return
	}
	*o.drawable.Transform() = o.tf
	o.drawable.Draw(program)
}

// ShouldRender reports whether the object passes the distance test: visible
// and within maxDistance of the viewer. Pure; no side effects.
func (o *Object) ShouldRender(viewer mgl32.Vec3, maxDistance float32) bool {
	if !o.visible {
		return false
	}
	return o.tf.Position.Sub(viewer).Len() <= maxDistance
}

// Clone returns a new object wrapping the same drawable, with the name
// suffixed "_Clone" and the transform, animation and visibility copied.
// The clone shares the drawable and its GPU resources with the original.
func (o *Object) Clone() *Object {
	return &Object{
		name:          o.name + "_Clone",
		visible:       o.visible,
		drawable:      o.drawable,
		tf:            o.tf,
		autoRotate:    o.autoRotate,
		rotationSpeed: o.rotationSpeed,
	}
}

// Dispose marks the object as disposed. It never touches the wrapped
// drawable. Calling it again is a safe no-op.
func (o *Object) Dispose() {
	o.disposed = true
}

// Disposed reports whether Dispose has been called.
func (o *Object) Disposed() bool { return o.disposed }

// Name returns the scene-level name.
func (o *Object) Name() string { return o.name }

// SetName replaces the scene-level name.
func (o *Object) SetName(name string) { o.name = name }

// Visible reports whether the object takes part in rendering.
func (o *Object) Visible() bool { return o.visible }

// SetVisible sets the visibility flag.
func (o *Object) SetVisible(v bool) { o.visible = v }

// Drawable returns the wrapped drawable.
func (o *Object) Drawable() drawable.Drawable { return o.drawable }

// Transform returns a copy of the authoritative transform.
func (o *Object) Transform() transform.Transform { return o.tf }

// Position returns the world position.
func (o *Object) Position() mgl32.Vec3 { return o.tf.Position }

// SetPosition moves the object.
func (o *Object) SetPosition(p mgl32.Vec3) { o.tf.Position = p }

// Rotation returns the Euler rotation in degrees.
func (o *Object) Rotation() mgl32.Vec3 { return o.tf.Rotation }

// SetRotation sets the Euler rotation in degrees.
func (o *Object) SetRotation(r mgl32.Vec3) { o.tf.Rotation = r }

// Scale returns the per-axis scale.
func (o *Object) Scale() mgl32.Vec3 { return o.tf.Scale }

// SetScale sets the per-axis scale.
func (o *Object) SetScale(s mgl32.Vec3) { o.tf.Scale = s }

// AutoRotate reports whether the object spins on its own each Update.
func (o *Object) AutoRotate() bool { return o.autoRotate }

// RotationSpeed returns the auto-rotation speed in degrees per second.
func (o *Object) RotationSpeed() mgl32.Vec3 { return o.rotationSpeed }

// SetAutoRotate enables or disables auto-rotation with the given speed in
// degrees per second per axis.
func (o *Object) SetAutoRotate(enabled bool, speed mgl32.Vec3) {
	o.autoRotate = enabled
	o.rotationSpeed = speed
}
