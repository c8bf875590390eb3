package config

// SceneConfig describes the object placements of one scene file.
type SceneConfig struct {
	Name    string         `json:"name"`
	Objects []ObjectConfig `json:"objects"`
}

// ObjectConfig describes one scene object. Content is either a model path or
// a primitive name; exactly one should be set.
type ObjectConfig struct {
	Name string `json:"name"`

	// Model is an OBJ path relative to the asset root.
	Model string `json:"model"`

	// Primitive is "cube" or "plane".
	Primitive string  `json:"primitive"`
	Size      float32 `json:"size"`  // cube edge length / plane width
	Depth     float32 `json:"depth"` // plane depth, defaults to Size

	Position [3]float32  `json:"position"`
	Rotation [3]float32  `json:"rotation"`
	Scale    *[3]float32 `json:"scale"`   // nil means (1,1,1)
	Visible  *bool       `json:"visible"` // nil means true

	AutoRotate    bool       `json:"autoRotate"`
	RotationSpeed [3]float32 `json:"rotationSpeed"` // degrees per second
}
