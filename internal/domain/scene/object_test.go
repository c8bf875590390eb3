package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/transform"
)

// mockDrawable is a test double for the drawable interface
type mockDrawable struct {
	name      string
	tf        transform.Transform
	drawCalls int
	lastProg  uint32
}

func newMockDrawable(name string) *mockDrawable {
	return &mockDrawable{name: name, tf: transform.Default()}
}

func (m *mockDrawable) Name() string                    { return m.name }
func (m *mockDrawable) Transform() *transform.Transform { return &m.tf }
func (m *mockDrawable) Bounds() drawable.Box            { return drawable.Box{} }

func (m *mockDrawable) Draw(program uint32) {
	m.drawCalls++
	m.lastProg = program
}

func TestNewObject_NameDefaults(t *testing.T) {
	named := NewObject(newMockDrawable("cube"), "")
	assert.Equal(t, "cube", named.Name())

	explicit := NewObject(newMockDrawable("cube"), "hero")
	assert.Equal(t, "hero", explicit.Name())

	anonymous := NewObject(newMockDrawable(""), "")
	assert.Equal(t, "SceneObject", anonymous.Name())
}

func TestNewObject_CopiesDrawableTransform(t *testing.T) {
	d := newMockDrawable("cube")
	d.tf.Position = mgl32.Vec3{1, 2, 3}
	d.tf.Scale = mgl32.Vec3{2, 2, 2}

	o := NewObject(d, "")

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, o.Position())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, o.Scale())

	// The copy is a snapshot: later drawable changes do not leak in.
	d.tf.Position = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, o.Position())
}

func TestUpdate_NoOpWithoutAutoRotate(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetRotation(mgl32.Vec3{10, 20, 30})

	o.Update(1.0)

	assert.Equal(t, mgl32.Vec3{10, 20, 30}, o.Rotation())
}

func TestUpdate_AdvancesAndWraps(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetRotation(mgl32.Vec3{350, 0, 0})
	o.SetAutoRotate(true, mgl32.Vec3{20, 0, 0})

	o.Update(1.0)

	// 350 + 20 wraps to 10.
	assert.InDelta(t, 10.0, o.Rotation().X(), 1e-4)
	assert.GreaterOrEqual(t, o.Rotation().X(), float32(0))
	assert.Less(t, o.Rotation().X(), float32(360))
}

func TestUpdate_NegativeSpeedWrapsIntoRange(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetAutoRotate(true, mgl32.Vec3{0, -90, 0})

	o.Update(1.0)

	// 0 - 90 wraps to 270, never negative.
	assert.InDelta(t, 270.0, o.Rotation().Y(), 1e-4)

	o.Update(4.0) // another -360, back to 270
	assert.InDelta(t, 270.0, o.Rotation().Y(), 1e-3)
}

func TestUpdate_IntegrationIsAdditive(t *testing.T) {
	speed := mgl32.Vec3{33.3, -47.9, 360.5}
	const total = 7.25

	oneShot := NewObject(newMockDrawable("a"), "")
	oneShot.SetAutoRotate(true, speed)
	oneShot.Update(total)

	stepped := NewObject(newMockDrawable("b"), "")
	stepped.SetAutoRotate(true, speed)
	for i := 0; i < 29; i++ {
		stepped.Update(total / 29)
	}

	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, oneShot.Rotation()[axis], stepped.Rotation()[axis], 1e-2,
			"axis %d should match regardless of step count", axis)
	}
}

func TestRender_PushesTransformAndDelegates(t *testing.T) {
	d := newMockDrawable("cube")
	o := NewObject(d, "")
	o.SetPosition(mgl32.Vec3{5, 6, 7})
	o.SetRotation(mgl32.Vec3{45, 0, 0})
	o.SetScale(mgl32.Vec3{3, 3, 3})

	o.Render(42)

	assert.Equal(t, 1, d.drawCalls)
	assert.Equal(t, uint32(42), d.lastProg)
	assert.Equal(t, mgl32.Vec3{5, 6, 7}, d.tf.Position)
	assert.Equal(t, mgl32.Vec3{45, 0, 0}, d.tf.Rotation)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, d.tf.Scale)
}

func TestRender_NoOpWhenInvisible(t *testing.T) {
	d := newMockDrawable("cube")
	o := NewObject(d, "")
	o.SetVisible(false)

	o.Render(42)

	assert.Equal(t, 0, d.drawCalls)
}

func TestShouldRender_DistanceBoundary(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetPosition(mgl32.Vec3{10, 0, 0})
	viewer := mgl32.Vec3{0, 0, 0}

	assert.False(t, o.ShouldRender(viewer, 5))
	assert.True(t, o.ShouldRender(viewer, 10), "boundary distance is inclusive")
	assert.True(t, o.ShouldRender(viewer, 10.000001))
}

func TestShouldRender_MeasuresFromViewerNotOrigin(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetPosition(mgl32.Vec3{100, 0, 0})

	assert.True(t, o.ShouldRender(mgl32.Vec3{98, 0, 0}, 5))
	assert.False(t, o.ShouldRender(mgl32.Vec3{0, 0, 0}, 5))
}

func TestShouldRender_InvisibleShortCircuits(t *testing.T) {
	o := NewObject(newMockDrawable("cube"), "")
	o.SetVisible(false)

	assert.False(t, o.ShouldRender(o.Position(), 1000), "invisible loses even at distance zero")
}

func TestClone_SharesDrawableCopiesState(t *testing.T) {
	d := newMockDrawable("cube")
	o := NewObject(d, "original")
	o.SetPosition(mgl32.Vec3{1, 2, 3})
	o.SetAutoRotate(true, mgl32.Vec3{0, 90, 0})
	o.SetVisible(false)

	c := o.Clone()

	require.NotNil(t, c)
	assert.Equal(t, "original_Clone", c.Name())
	assert.Same(t, d, c.Drawable().(*mockDrawable), "clone shares the drawable")
	assert.Equal(t, o.Position(), c.Position())
	assert.Equal(t, o.AutoRotate(), c.AutoRotate())
	assert.Equal(t, o.RotationSpeed(), c.RotationSpeed())
	assert.Equal(t, o.Visible(), c.Visible())

	// Clone state is independent after the copy.
	c.SetPosition(mgl32.Vec3{9, 9, 9})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, o.Position())
}

func TestDispose_IdempotentAndLeavesDrawableAlone(t *testing.T) {
	d := newMockDrawable("cube")
	o := NewObject(d, "")

	o.Dispose()
	o.Dispose()

	assert.True(t, o.Disposed())
	assert.Equal(t, 0, d.drawCalls)
}
