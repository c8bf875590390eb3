package loader

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/infrastructure/graphics/mesh"
	"renderlab/internal/infrastructure/graphics/model"
)

// LoadModel reads the OBJ at objPath (and its material library, if the OBJ
// names one) and assembles a model. The result is CPU-side only; the caller
// uploads it. A missing or unreadable MTL degrades to default materials
// rather than failing the load.
func LoadModel(fsys fs.FS, objPath string) (*model.Model, error) {
	f, err := fsys.Open(objPath)
	if err != nil {
		return nil, fmt.Errorf("open obj %s: %w", objPath, err)
	}
	obj, parseErr := ParseOBJ(f)
	f.Close()
	if parseErr != nil {
		return nil, fmt.Errorf("parse obj %s: %w", objPath, parseErr)
	}

	dir := path.Dir(objPath)
	materials := map[string]*model.Material{}
	if obj.MTLLib != "" {
		if mf, err := fsys.Open(path.Join(dir, normalizePath(obj.MTLLib))); err == nil {
			if parsed, err := ParseMTL(mf); err == nil {
				materials = parsed
			}
			mf.Close()
		}
	}

	name := obj.Name
	if name == "" {
		name = strings.TrimSuffix(path.Base(objPath), path.Ext(objPath))
	}

	m, err := BuildModel(name, obj, materials, dir)
	if err != nil {
		return nil, fmt.Errorf("build model %s: %w", objPath, err)
	}
	return m, nil
}

// BuildModel converts parsed OBJ data into a model. Vertices are deduplicated
// per attribute triple; faces without normals get flat per-face normals.
// Material texture paths are rewritten relative to dir.
func BuildModel(name string, obj *OBJFile, materials map[string]*model.Material, dir string) (*model.Model, error) {
	if len(obj.Positions) == 0 {
		return nil, fmt.Errorf("no vertex positions")
	}

	// Rewrite texture paths once up front; materials are shared across every
	// group that references them, so joining inside the group loop would
	// prefix dir repeatedly.
	for _, mat := range materials {
		if mat.DiffuseMap != "" {
			mat.DiffuseMap = path.Join(dir, normalizePath(mat.DiffuseMap))
		}
	}

	var groups []*model.Group
	for i, g := range obj.Groups {
		if len(g.Faces) == 0 {
			continue
		}

		vertices, indices := buildGeometry(obj, g)

		mat, ok := materials[g.Material]
		if !ok {
			mat = model.DefaultMaterial()
		}

		meshName := fmt.Sprintf("%s/%d", name, i)
		if g.Material != "" {
			meshName = fmt.Sprintf("%s/%s", name, g.Material)
		}
		groups = append(groups, &model.Group{
			Material: mat,
			Geometry: mesh.New(meshName, vertices, indices),
		})
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	return model.New(name, groups), nil
}

func buildGeometry(obj *OBJFile, g *FaceGroup) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32
	cache := make(map[VertexRef]uint32)

	emit := func(ref VertexRef, normal mgl32.Vec3, dedupe bool) {
		if dedupe {
			if idx, ok := cache[ref]; ok {
				indices = append(indices, idx)
				return
			}
		}
		pos := obj.Positions[ref.Position]
		uv := mgl32.Vec2{}
		if ref.UV >= 0 {
			uv = obj.UVs[ref.UV]
		}
		idx := uint32(len(vertices) / mesh.Stride)
		vertices = append(vertices,
			pos.X(), pos.Y(), pos.Z(),
			normal.X(), normal.Y(), normal.Z(),
			uv.X(), uv.Y())
		if dedupe {
			cache[ref] = idx
		}
		indices = append(indices, idx)
	}

	for _, face := range g.Faces {
		hasNormals := face[0].Normal >= 0 && face[1].Normal >= 0 && face[2].Normal >= 0
		var flat mgl32.Vec3
		if !hasNormals {
			flat = flatNormal(
				obj.Positions[face[0].Position],
				obj.Positions[face[1].Position],
				obj.Positions[face[2].Position])
		}
		for _, ref := range face {
			if hasNormals {
				emit(ref, obj.Normals[ref.Normal], true)
			} else {
				// Flat normals differ per face, so these vertices
				// cannot be shared across faces.
				emit(ref, flat, false)
			}
		}
	}
	return vertices, indices
}

func flatNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// normalizePath converts Windows-style backslash paths, common in MTL files
// exported by modeling tools, to fs.FS slash paths.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
