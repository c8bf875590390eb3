package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engineJSON = `{
  "window": {"width": 1280, "height": 720, "title": "renderlab", "vsync": true},
  "camera": {"position": [0, 2, 8], "moveSpeed": 5, "sensitivity": 0.1},
  "culling": {"enabled": true, "maxDistance": 50},
  "sun": {"direction": [0.5, -1, -0.5], "color": [1, 1, 1], "intensity": 0.8, "ambientStrength": 0.2},
  "clearColor": [0.1, 0.1, 0.15]
}`

const sceneJSON = `{
  "objects": [
    {"name": "ground", "primitive": "plane", "size": 40, "position": [0, -1, 0]},
    {"name": "spinner", "primitive": "cube", "size": 2, "position": [0, 0, -5],
     "autoRotate": true, "rotationSpeed": [0, 45, 0]},
    {"name": "hidden", "primitive": "cube", "size": 1, "visible": false,
     "scale": [2, 1, 1]}
  ]
}`

func testLoader() *Loader {
	return NewFSLoader(fstest.MapFS{
		"engine.json":         {Data: []byte(engineJSON)},
		"scenes/default.json": {Data: []byte(sceneJSON)},
	})
}

func TestLoader_LoadEngine(t *testing.T) {
	cfg, err := testLoader().LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "renderlab", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, float32(5), cfg.Camera.MoveSpeed)
	assert.True(t, cfg.Culling.Enabled)
	assert.Equal(t, float32(50), cfg.Culling.MaxDistance)
	assert.Equal(t, float32(0.8), cfg.Sun.Intensity)
	assert.Equal(t, [3]float32{0.1, 0.1, 0.15}, cfg.ClearColor)
}

func TestLoader_LoadScene(t *testing.T) {
	cfg, err := testLoader().LoadScene("default")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Name, "name defaults to the file name")
	require.Len(t, cfg.Objects, 3)

	spinner := cfg.Objects[1]
	assert.Equal(t, "spinner", spinner.Name)
	assert.Equal(t, "cube", spinner.Primitive)
	assert.True(t, spinner.AutoRotate)
	assert.Equal(t, [3]float32{0, 45, 0}, spinner.RotationSpeed)
	assert.Nil(t, spinner.Visible, "unset visibility stays nil for the default")

	hidden := cfg.Objects[2]
	require.NotNil(t, hidden.Visible)
	assert.False(t, *hidden.Visible)
	require.NotNil(t, hidden.Scale)
	assert.Equal(t, [3]float32{2, 1, 1}, *hidden.Scale)
}

func TestLoader_MissingFiles(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{})

	_, err := l.LoadEngine()
	assert.Error(t, err)

	_, err = l.LoadScene("default")
	assert.Error(t, err)
}

func TestLoader_MalformedJSON(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{
		"engine.json": {Data: []byte("{not json")},
	})

	_, err := l.LoadEngine()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
