// Package loader parses Wavefront OBJ/MTL files and assembles them into
// renderable models. Parsing and model assembly are GPU-free; uploading the
// result is the content library's job.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexRef indexes into an OBJFile's attribute arrays, 0-based. An index of
// -1 means the attribute was absent on the face.
type VertexRef struct {
	Position int
	UV       int
	Normal   int
}

// Face is one triangle.
type Face [3]VertexRef

// FaceGroup collects the triangles drawn with one material.
type FaceGroup struct {
	Material string // empty when no usemtl was seen
	Faces    []Face
}

// OBJFile is the raw parsed content of an OBJ file.
type OBJFile struct {
	Name      string // from the first o/g statement
	MTLLib    string // from mtllib, if any
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Groups    []*FaceGroup
}

// ParseOBJ reads an OBJ file. Polygon faces are triangulated as fans and
// negative (relative) indices are resolved. Unknown statements are skipped.
func ParseOBJ(r io.Reader) (*OBJFile, error) {
	obj := &OBJFile{}
	var group *FaceGroup

	currentGroup := func() *FaceGroup {
		if group == nil {
			group = &FaceGroup{}
			obj.Groups = append(obj.Groups, group)
		}
		return group
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			obj.Positions = append(obj.Positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			obj.Normals = append(obj.Normals, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 32)
			v, err2 := strconv.ParseFloat(fields[2], 32)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad texcoord", lineNo)
			}
			obj.UVs = append(obj.UVs, mgl32.Vec2{float32(u), float32(v)})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			refs := make([]VertexRef, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				ref, err := obj.parseRef(spec)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				refs = append(refs, ref)
			}
			g := currentGroup()
			for i := 1; i+1 < len(refs); i++ {
				g.Faces = append(g.Faces, Face{refs[0], refs[i], refs[i+1]})
			}
		case "usemtl":
			if len(fields) > 1 {
				group = &FaceGroup{Material: fields[1]}
				obj.Groups = append(obj.Groups, group)
			}
		case "mtllib":
			if len(fields) > 1 {
				obj.MTLLib = fields[1]
			}
		case "o", "g":
			if obj.Name == "" && len(fields) > 1 {
				obj.Name = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return obj, nil
}

// parseRef resolves one "v", "v/vt", "v//vn" or "v/vt/vn" spec to 0-based
// indices. OBJ indices are 1-based; negative values count back from the end
// of the attribute array parsed so far.
func (o *OBJFile) parseRef(spec string) (VertexRef, error) {
	ref := VertexRef{Position: -1, UV: -1, Normal: -1}
	parts := strings.Split(spec, "/")

	resolve := func(s string, count int) (int, error) {
		idx, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", s)
		}
		if idx < 0 {
			idx = count + idx
		} else {
			idx--
		}
		if idx < 0 || idx >= count {
			return 0, fmt.Errorf("index %q out of range", s)
		}
		return idx, nil
	}

	var err error
	if ref.Position, err = resolve(parts[0], len(o.Positions)); err != nil {
		return ref, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ref.UV, err = resolve(parts[1], len(o.UVs)); err != nil {
			return ref, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ref.Normal, err = resolve(parts[2], len(o.Normals)); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("bad component %q", fields[i])
		}
		v[i] = float32(f)
	}
	return v, nil
}
