package loader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# a unit quad split by material
mtllib quad.mtl
o Quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl red
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const quadMTL = `newmtl red
Ka 0.1 0.0 0.0
Kd 0.9 0.1 0.1
Ks 0.5 0.5 0.5
Ns 64
map_Kd textures\red.png
`

func TestParseOBJ_Quad(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)

	assert.Equal(t, "Quad", obj.Name)
	assert.Equal(t, "quad.mtl", obj.MTLLib)
	assert.Len(t, obj.Positions, 4)
	assert.Len(t, obj.UVs, 4)
	assert.Len(t, obj.Normals, 1)

	require.Len(t, obj.Groups, 1)
	g := obj.Groups[0]
	assert.Equal(t, "red", g.Material)
	assert.Len(t, g.Faces, 2, "quad triangulates into a fan of 2")
	// Fan shares the first vertex.
	assert.Equal(t, g.Faces[0][0], g.Faces[1][0])
}

func TestParseOBJ_NegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	obj, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, obj.Groups, 1)
	face := obj.Groups[0].Faces[0]
	assert.Equal(t, 0, face[0].Position)
	assert.Equal(t, 1, face[1].Position)
	assert.Equal(t, 2, face[2].Position)
	assert.Equal(t, -1, face[0].Normal, "missing normal is -1")
}

func TestParseOBJ_IndexOutOfRange(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParseOBJ_BadVertex(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 zero 0\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseMTL(t *testing.T) {
	mats, err := ParseMTL(strings.NewReader(quadMTL))
	require.NoError(t, err)

	red, ok := mats["red"]
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.9, 0.1, 0.1}, red.Diffuse)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, red.Specular)
	assert.Equal(t, float32(64), red.Shininess)
	assert.Equal(t, `textures\red.png`, red.DiffuseMap)
}

func TestLoadModel_QuadWithMaterial(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/quad.obj": {Data: []byte(quadOBJ)},
		"assets/quad.mtl": {Data: []byte(quadMTL)},
	}

	m, err := LoadModel(fsys, "assets/quad.obj")
	require.NoError(t, err)

	assert.Equal(t, "Quad", m.Name())
	require.Len(t, m.Groups(), 1)

	g := m.Groups()[0]
	assert.Equal(t, "red", g.Material.Name)
	assert.Equal(t, "assets/textures/red.png", g.Material.DiffuseMap,
		"texture path resolved relative to the obj, slashes normalized")
	assert.Equal(t, 4, g.Geometry.VertexCount(), "shared fan vertices deduplicated")
	assert.Equal(t, 2, g.Geometry.TriangleCount())

	b := m.Bounds()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, b.Max)
}

func TestLoadModel_ReusedMaterialResolvesPathOnce(t *testing.T) {
	// Two usemtl blocks naming the same material produce two groups sharing
	// one *Material; the texture path must not be prefixed once per group.
	obj := `mtllib quad.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
usemtl red
f 1//1 2//1 3//1
usemtl red
f 1//1 3//1 4//1
`
	fsys := fstest.MapFS{
		"assets/quad.obj": {Data: []byte(obj)},
		"assets/quad.mtl": {Data: []byte(quadMTL)},
	}

	m, err := LoadModel(fsys, "assets/quad.obj")
	require.NoError(t, err)

	require.Len(t, m.Groups(), 2)
	for _, g := range m.Groups() {
		assert.Equal(t, "assets/textures/red.png", g.Material.DiffuseMap)
	}
}

func TestLoadModel_MissingMTLDegradesToDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"quad.obj": {Data: []byte(quadOBJ)},
	}

	m, err := LoadModel(fsys, "quad.obj")
	require.NoError(t, err)

	assert.Equal(t, "default", m.Groups()[0].Material.Name)
}

func TestLoadModel_FlatNormalsWhenAbsent(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	fsys := fstest.MapFS{"tri.obj": {Data: []byte(src)}}

	m, err := LoadModel(fsys, "tri.obj")
	require.NoError(t, err)

	g := m.Groups()[0].Geometry
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, "tri", m.Name(), "name falls back to the file name")
}

func TestLoadModel_NoFaces(t *testing.T) {
	fsys := fstest.MapFS{"empty.obj": {Data: []byte("v 0 0 0\n")}}

	_, err := LoadModel(fsys, "empty.obj")
	assert.Error(t, err)
}

func TestLoadModel_MissingFile(t *testing.T) {
	_, err := LoadModel(fstest.MapFS{}, "nope.obj")
	assert.Error(t, err)
}
