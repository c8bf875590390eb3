// Package model provides composite drawables: groups of meshes with
// per-group materials, as produced by the OBJ loader.
package model

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/transform"
	"renderlab/internal/infrastructure/graphics/mesh"
	"renderlab/internal/infrastructure/graphics/texture"
)

// Material describes Phong surface properties for one mesh group.
type Material struct {
	Name      string
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32

	// DiffuseMap is the texture path from the MTL file, relative to the
	// OBJ's directory. Empty means untextured.
	DiffuseMap string

	textureHandle uint32
}

// DefaultMaterial returns a plain light-gray Phong material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "default",
		Ambient:   mgl32.Vec3{1, 1, 1},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: 32,
	}
}

// SetTexture attaches an uploaded GL texture handle.
func (m *Material) SetTexture(handle uint32) { m.textureHandle = handle }

// Texture returns the GL texture handle, zero if untextured.
func (m *Material) Texture() uint32 { return m.textureHandle }

// Group pairs geometry with the material it is drawn with.
type Group struct {
	Material *Material
	Geometry *mesh.Mesh
}

// Model is a composite drawable made of material groups sharing one
// transform.
type Model struct {
	name   string
	tf     transform.Transform
	groups []*Group
}

// New builds a model from its groups.
func New(name string, groups []*Group) *Model {
	return &Model{
		name:   name,
		tf:     transform.Default(),
		groups: groups,
	}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Transform returns the model's own transform, overwritten by the scene
// object that renders it.
func (m *Model) Transform() *transform.Transform { return &m.tf }

// Groups returns the material groups.
func (m *Model) Groups() []*Group { return m.groups }

// Bounds returns the union of all group bounds.
func (m *Model) Bounds() drawable.Box {
	b := drawable.NewBox()
	for _, g := range m.groups {
		b = b.Union(g.Geometry.Bounds())
	}
	return b
}

// Upload pushes every group's geometry to the GPU.
func (m *Model) Upload() {
	for _, g := range m.groups {
		g.Geometry.Upload()
	}
}

// Draw renders every group with the model's transform and its group
// material. Textured groups bind their diffuse map on texture unit 0.
func (m *Model) Draw(program uint32) {
	for _, g := range m.groups {
		*g.Geometry.Transform() = m.tf
		applyMaterial(program, g.Material)
		g.Geometry.Draw(program)
	}
}

// Delete frees the GPU buffers and textures owned by the model.
func (m *Model) Delete() {
	for _, g := range m.groups {
		g.Geometry.Delete()
		if g.Material != nil && g.Material.textureHandle != 0 {
			texture.Delete(g.Material.textureHandle)
			g.Material.textureHandle = 0
		}
	}
}

func applyMaterial(program uint32, mat *Material) {
	if mat == nil {
		mat = DefaultMaterial()
	}
	setVec3(program, "material.ambient", mat.Ambient)
	setVec3(program, "material.diffuse", mat.Diffuse)
	setVec3(program, "material.specular", mat.Specular)
	gl.Uniform1f(location(program, "material.shininess"), mat.Shininess)

	if mat.textureHandle != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mat.textureHandle)
		gl.Uniform1i(location(program, "diffuseMap"), 0)
		gl.Uniform1i(location(program, "useDiffuseMap"), 1)
	} else {
		gl.Uniform1i(location(program, "useDiffuseMap"), 0)
	}
}

func setVec3(program uint32, name string, v mgl32.Vec3) {
	gl.Uniform3f(location(program, name), v.X(), v.Y(), v.Z())
}

func location(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
