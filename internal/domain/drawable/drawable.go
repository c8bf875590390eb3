// Package drawable defines the capability the scene layer consumes: anything
// with a transform and a draw call. Meshes and composite models both
// implement it, so the scene never has to distinguish the two.
package drawable

import (
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/domain/transform"
)

// Drawable is any renderable content. The scene layer treats the shader
// program handle as opaque and never inspects it.
type Drawable interface {
	// Name identifies the content for lookups and logs.
	Name() string

	// Transform returns the drawable's own transform. Scene objects
	// overwrite it immediately before each draw, so it acts as a
	// write-through cache rather than a second source of truth.
	Transform() *transform.Transform

	// Draw renders the content with the given shader program.
	Draw(program uint32)

	// Bounds returns the axis-aligned bounding box in local space.
	Bounds() Box
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBox returns a box that is ready to grow via ExpandByPoint: Min starts at
// +inf and Max at -inf so the first point sets both.
func NewBox() Box {
	const inf = float32(3.4e38)
	return Box{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// ExpandByPoint grows the box to contain p.
func (b *Box) ExpandByPoint(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	out := b
	out.ExpandByPoint(o.Min)
	out.ExpandByPoint(o.Max)
	return out
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}
