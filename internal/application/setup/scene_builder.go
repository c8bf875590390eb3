// Package setup builds a runnable scene from configuration: it resolves each
// configured object to library content and constructs the scene manager.
package setup

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/domain/scene"
	"renderlab/internal/infrastructure/config"
	"renderlab/internal/infrastructure/graphics/mesh"
	"renderlab/internal/infrastructure/library"
)

// BuildScene converts a scene config into a populated manager. Content is
// registered in lib keyed by model path or primitive shape, so two objects
// referring to the same content share one drawable; the library stays the
// sole owner of the GPU resources either way.
func BuildScene(cfg *config.SceneConfig, culling config.CullingConfig, lib *library.Library) (*scene.Manager, error) {
	mgr := scene.NewManager()
	if !culling.Enabled {
		mgr.ToggleDistanceCulling()
	}
	if culling.MaxDistance > 0 {
		mgr.AdjustRenderDistance(culling.MaxDistance - scene.DefaultMaxRenderDistance)
		if mgr.MaxRenderDistance() != culling.MaxDistance {
			log.Printf("culling maxDistance %.1f raised to the %.1f floor",
				culling.MaxDistance, mgr.MaxRenderDistance())
		}
	}

	for i, oc := range cfg.Objects {
		d, err := resolveContent(oc, lib)
		if err != nil {
			return nil, fmt.Errorf("scene %s object %d (%s): %w", cfg.Name, i, oc.Name, err)
		}

		obj := scene.NewObject(d, oc.Name)
		obj.SetPosition(mgl32.Vec3(oc.Position))
		obj.SetRotation(mgl32.Vec3(oc.Rotation))
		if oc.Scale != nil {
			obj.SetScale(mgl32.Vec3(*oc.Scale))
		} else {
			obj.SetScale(mgl32.Vec3{1, 1, 1})
		}
		if oc.Visible != nil {
			obj.SetVisible(*oc.Visible)
		}
		if oc.AutoRotate {
			obj.SetAutoRotate(true, mgl32.Vec3(oc.RotationSpeed))
		}
		mgr.AddObject(obj)
	}

	return mgr, nil
}

func resolveContent(oc config.ObjectConfig, lib *library.Library) (drawable.Drawable, error) {
	switch {
	case oc.Model != "" && oc.Primitive != "":
		return nil, fmt.Errorf("both model and primitive set")
	case oc.Model != "":
		if d, ok := lib.Get(oc.Model); ok {
			return d, nil
		}
		return lib.LoadModel(oc.Model, oc.Model)
	case oc.Primitive != "":
		return resolvePrimitive(oc, lib)
	default:
		return nil, fmt.Errorf("no model or primitive set")
	}
}

func resolvePrimitive(oc config.ObjectConfig, lib *library.Library) (drawable.Drawable, error) {
	size := oc.Size
	if size <= 0 {
		size = 1
	}

	var key string
	var build func() drawable.Drawable
	switch oc.Primitive {
	case "cube":
		key = fmt.Sprintf("cube:%g", size)
		build = func() drawable.Drawable { return mesh.NewCube(size) }
	case "plane":
		depth := oc.Depth
		if depth <= 0 {
			depth = size
		}
		key = fmt.Sprintf("plane:%gx%g", size, depth)
		build = func() drawable.Drawable { return mesh.NewPlane(size, depth) }
	default:
		return nil, fmt.Errorf("unknown primitive %q", oc.Primitive)
	}

	if d, ok := lib.Get(key); ok {
		return d, nil
	}
	d := build()
	if err := lib.Add(key, d); err != nil {
		return nil, err
	}
	return d, nil
}
