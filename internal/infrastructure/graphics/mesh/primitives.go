package mesh

import "github.com/go-gl/mathgl/mgl32"

// NewCube returns a cube of the given edge length centered on the origin,
// with per-face normals and full-face texture coordinates.
func NewCube(size float32) *Mesh {
	half := size / 2

	// Each face is described by its normal and the two in-plane axes.
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},   // front
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // back
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},  // right
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},  // left
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},  // top
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},  // bottom
	}
	corners := [][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 6*4*Stride)
	indices := make([]uint32, 0, 6*6)

	for _, f := range faces {
		base := uint32(len(vertices) / Stride)
		for i, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(half)
			vertices = append(vertices,
				p.X(), p.Y(), p.Z(),
				f.n.X(), f.n.Y(), f.n.Z(),
				uvs[i][0], uvs[i][1])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return New("Cube", vertices, indices)
}

// NewPlane returns a flat plane on the XZ axis centered on the origin,
// facing +Y, with texture coordinates tiled once per unit.
func NewPlane(width, depth float32) *Mesh {
	hw, hd := width/2, depth/2

	vertices := []float32{
		-hw, 0, hd, 0, 1, 0, 0, 0,
		hw, 0, hd, 0, 1, 0, width, 0,
		hw, 0, -hd, 0, 1, 0, width, depth,
		-hw, 0, -hd, 0, 1, 0, 0, depth,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	return New("Plane", vertices, indices)
}
