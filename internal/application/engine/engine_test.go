package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/scene"
	"renderlab/internal/domain/transform"
)

type stubDrawable struct {
	name string
	tf   transform.Transform
}

func (s *stubDrawable) Name() string                    { return s.name }
func (s *stubDrawable) Transform() *transform.Transform { return &s.tf }
func (s *stubDrawable) Draw(program uint32)             {}
func (s *stubDrawable) Bounds() drawable.Box            { return drawable.Box{} }

func TestToggleVisibility(t *testing.T) {
	mgr := scene.NewManager()
	o := scene.NewObject(&stubDrawable{name: "spinner"}, "spinner")
	mgr.AddObject(o)
	require.True(t, o.Visible())

	visible, ok := toggleVisibility(mgr, "SPINNER")
	assert.True(t, ok, "lookup is case-insensitive")
	assert.False(t, visible)
	assert.False(t, o.Visible())

	visible, ok = toggleVisibility(mgr, "spinner")
	assert.True(t, ok)
	assert.True(t, visible)
	assert.True(t, o.Visible())
}

func TestToggleVisibility_UnknownName(t *testing.T) {
	mgr := scene.NewManager()

	visible, ok := toggleVisibility(mgr, "ghost")
	assert.False(t, ok)
	assert.False(t, visible)
}
