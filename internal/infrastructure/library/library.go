// Package library is the content registry that owns drawables and their GPU
// resources. Scene objects and managers hold non-owning references into it;
// clearing a scene never frees GPU memory, disposing the library does.
//
// Loading and registration are CPU-side only. UploadAll pushes everything to
// the GPU in one explicit step once a GL context exists.
package library

import (
	"fmt"
	"io/fs"
	"sort"

	"renderlab/internal/domain/drawable"
	"renderlab/internal/infrastructure/graphics/model"
	"renderlab/internal/infrastructure/graphics/texture"
	"renderlab/internal/infrastructure/loader"
)

// Library maps names to loaded drawable content.
type Library struct {
	fsys      fs.FS
	drawables map[string]drawable.Drawable
}

// New returns an empty library reading assets from fsys.
func New(fsys fs.FS) *Library {
	return &Library{
		fsys:      fsys,
		drawables: make(map[string]drawable.Drawable),
	}
}

// Add registers a drawable under name. Registering a name twice is an error;
// content names are the library's lookup keys.
func (l *Library) Add(name string, d drawable.Drawable) error {
	if _, exists := l.drawables[name]; exists {
		return fmt.Errorf("library: %q already registered", name)
	}
	l.drawables[name] = d
	return nil
}

// Get looks up a drawable by name.
func (l *Library) Get(name string) (drawable.Drawable, bool) {
	d, ok := l.drawables[name]
	return d, ok
}

// Names returns the registered names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.drawables))
	for n := range l.drawables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered drawables.
func (l *Library) Len() int { return len(l.drawables) }

// LoadModel loads the OBJ at path and registers it under name. The model
// stays CPU-side until UploadAll.
func (l *Library) LoadModel(name, path string) (*model.Model, error) {
	m, err := loader.LoadModel(l.fsys, path)
	if err != nil {
		return nil, err
	}
	if err := l.Add(name, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UploadAll pushes every registered drawable's geometry to the GPU and loads
// the diffuse textures of model materials. Requires a current GL context.
// Texture load failures leave the group untextured rather than failing.
func (l *Library) UploadAll() {
	for _, d := range l.drawables {
		if up, ok := d.(interface{ Upload() }); ok {
			up.Upload()
		}
		m, ok := d.(*model.Model)
		if !ok {
			continue
		}
		for _, g := range m.Groups() {
			if g.Material == nil || g.Material.DiffuseMap == "" || g.Material.Texture() != 0 {
				continue
			}
			if handle, err := texture.Load(l.fsys, g.Material.DiffuseMap); err == nil {
				g.Material.SetTexture(handle)
			}
		}
	}
}

// Dispose frees the GPU resources of everything registered and empties the
// library. Safe to call more than once.
func (l *Library) Dispose() {
	for name, d := range l.drawables {
		if res, ok := d.(interface{ Delete() }); ok {
			res.Delete()
		}
		delete(l.drawables, name)
	}
}
