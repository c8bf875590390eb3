package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"renderlab/internal/infrastructure/graphics/model"
)

// ParseMTL reads a Wavefront material library. Unknown statements are
// skipped; statements before the first newmtl are ignored.
func ParseMTL(r io.Reader) (map[string]*model.Material, error) {
	materials := make(map[string]*model.Material)
	var current *model.Material

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if fields[0] == "newmtl" {
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: newmtl needs a name", lineNo)
			}
			current = model.DefaultMaterial()
			current.Name = fields[1]
			materials[current.Name] = current
			continue
		}
		if current == nil {
			continue
		}

		switch fields[0] {
		case "Ka", "Kd", "Ks":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", lineNo, fields[0], err)
			}
			switch fields[0] {
			case "Ka":
				current.Ambient = v
			case "Kd":
				current.Diffuse = v
			case "Ks":
				current.Specular = v
			}
		case "Ns":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: Ns needs a value", lineNo)
			}
			f, err := strconv.ParseFloat(fields[1], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad Ns %q", lineNo, fields[1])
			}
			current.Shininess = float32(f)
		case "map_Kd":
			if len(fields) > 1 {
				current.DiffuseMap = fields[len(fields)-1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mtl: %w", err)
	}
	return materials, nil
}
