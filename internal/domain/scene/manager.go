package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxRenderDistance is the culling radius a new Manager starts with.
const DefaultMaxRenderDistance = 50.0

// minRenderDistance is the floor AdjustRenderDistance clamps to, preventing
// degenerate zero or negative culling radii.
const minRenderDistance = 5.0

// Manager owns an ordered collection of scene objects and runs the per-frame
// update and render passes.
//
// Manager is not safe for concurrent use, and the collection must not be
// mutated while Update or Render is running.
type Manager struct {
	objects []*Object

	cullingEnabled    bool
	maxRenderDistance float32

	// Counters from the most recent Render pass.
	renderedObjects int
	culledObjects   int
}

// NewManager returns an empty manager with distance culling enabled at the
// default radius.
func NewManager() *Manager {
	return &Manager{
		cullingEnabled:    true,
		maxRenderDistance: DefaultMaxRenderDistance,
	}
}

// AddObject appends obj to the collection. Nil objects and objects already
// present (by identity, not by name) are ignored.
func (m *Manager) AddObject(obj *Object) {
	if obj == nil {
		return
	}
	for _, o := range m.objects {
		if o == obj {
			return
		}
	}
	m.objects = append(m.objects, obj)
}

// RemoveObject removes obj by identity and reports whether it was present.
// The removed object is not disposed; the caller keeps ownership of it.
func (m *Manager) RemoveObject(obj *Object) bool {
	for i, o := range m.objects {
		if o == obj {
			m.objects = append(m.objects[:i], m.objects[i+1:]...)
			return true
		}
	}
	return false
}

// FindObject returns the first object whose name matches, case-insensitively,
// or nil if none does. With duplicate names only the first by insertion order
// is reachable.
func (m *Manager) FindObject(name string) *Object {
	for _, o := range m.objects {
		if strings.EqualFold(o.Name(), name) {
			return o
		}
	}
	return nil
}

// Objects returns a copy of the collection in insertion order.
func (m *Manager) Objects() []*Object {
	out := make([]*Object, len(m.objects))
	copy(out, m.objects)
	return out
}

// Update advances every object's animation in insertion order. Invisible
// objects still animate.
func (m *Manager) Update(dt float32) {
	for _, o := range m.objects {
		o.Update(dt)
	}
}

// Render classifies every object exactly once and draws the survivors in
// insertion order. With culling enabled, objects that fail the distance test
// are counted as culled and skipped. With culling disabled every object is
// counted as rendered, even when its own Render call no-ops on invisibility:
// the counters track attempted renders, not pixels drawn.
//
// After Render returns, RenderedObjects + CulledObjects == TotalObjects.
func (m *Manager) Render(program uint32, viewer mgl32.Vec3) {
	m.renderedObjects = 0
	m.culledObjects = 0

	for _, o := range m.objects {
		if m.cullingEnabled && !o.ShouldRender(viewer, m.maxRenderDistance) {
			m.culledObjects++
			continue
		}
		o.Render(program)
		m.renderedObjects++
	}
}

// ToggleDistanceCulling flips the culling policy.
func (m *Manager) ToggleDistanceCulling() {
	m.cullingEnabled = !m.cullingEnabled
}

// CullingEnabled reports whether distance culling is active.
func (m *Manager) CullingEnabled() bool { return m.cullingEnabled }

// AdjustRenderDistance adds delta to the culling radius, clamped to a floor
// of 5 units.
func (m *Manager) AdjustRenderDistance(delta float32) {
	m.maxRenderDistance += delta
	if m.maxRenderDistance < minRenderDistance {
		m.maxRenderDistance = minRenderDistance
	}
}

// MaxRenderDistance returns the current culling radius.
func (m *Manager) MaxRenderDistance() float32 { return m.maxRenderDistance }

// TotalObjects returns the collection size.
func (m *Manager) TotalObjects() int { return len(m.objects) }

// RenderedObjects returns how many objects the last Render pass drew
// (attempted to draw; see Render).
func (m *Manager) RenderedObjects() int { return m.renderedObjects }

// CulledObjects returns how many objects the last Render pass skipped.
func (m *Manager) CulledObjects() int { return m.culledObjects }

// Clear disposes every object and empties the collection. GPU resources are
// untouched; those belong to the content library.
func (m *Manager) Clear() {
	for _, o := range m.objects {
		o.Dispose()
	}
	m.objects = nil
}

// Dispose releases the manager. Equivalent to Clear.
func (m *Manager) Dispose() {
	m.Clear()
}

// PerformanceInfo returns a human-readable snapshot of the last render pass.
func (m *Manager) PerformanceInfo() string {
	return fmt.Sprintf("objects: %d rendered: %d culled: %d culling: %v maxDistance: %.1f",
		len(m.objects), m.renderedObjects, m.culledObjects, m.cullingEnabled, m.maxRenderDistance)
}
