// Package mesh provides triangle meshes with GPU residency. Vertex data is
// built CPU-side first; Upload is a separate explicit step so geometry can be
// constructed and inspected without a GL context.
package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/transform"
)

// Stride is the number of floats per vertex: position 3, normal 3, uv 2.
const Stride = 8

// Mesh is an indexed triangle mesh. It implements drawable.Drawable once
// uploaded.
type Mesh struct {
	name string
	tf   transform.Transform

	vertices []float32 // interleaved pos3|normal3|uv2
	indices  []uint32
	bounds   drawable.Box

	vao, vbo, ebo uint32
	uploaded      bool
}

// New builds a mesh from interleaved vertex data and triangle indices and
// computes its bounding box.
func New(name string, vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{
		name:     name,
		tf:       transform.Default(),
		vertices: vertices,
		indices:  indices,
		bounds:   drawable.NewBox(),
	}
	for i := 0; i+2 < len(vertices); i += Stride {
		m.bounds.ExpandByPoint(mgl32.Vec3{vertices[i], vertices[i+1], vertices[i+2]})
	}
	return m
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// Transform returns the mesh's own transform, overwritten by the scene
// object that renders it.
func (m *Mesh) Transform() *transform.Transform { return &m.tf }

// Bounds returns the local-space bounding box.
func (m *Mesh) Bounds() drawable.Box { return m.bounds }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) / Stride }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Uploaded reports whether GPU buffers exist for this mesh.
func (m *Mesh) Uploaded() bool { return m.uploaded }

// Upload creates the VAO/VBO/EBO and copies the vertex data to the GPU.
// Calling it again is a no-op.
func (m *Mesh) Upload() {
	if m.uploaded {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.vertices)*4, gl.Ptr(m.vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*4, gl.Ptr(m.indices), gl.STATIC_DRAW)

	const stride = Stride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	m.uploaded = true
}

// Draw sets the model uniform from the mesh transform and issues the indexed
// draw call. The mesh must be uploaded first.
func (m *Mesh) Draw(program uint32) {
	if !m.uploaded {
		return
	}
	model := m.tf.Matrix()
	loc := gl.GetUniformLocation(program, gl.Str("model\x00"))
	gl.UniformMatrix4fv(loc, 1, false, &model[0])

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers. Safe to call more than once.
func (m *Mesh) Delete() {
	if !m.uploaded {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
	m.uploaded = false
}
