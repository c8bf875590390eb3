package config

// EngineConfig holds the engine-wide settings from engine.json.
type EngineConfig struct {
	Window  WindowConfig  `json:"window"`
	Camera  CameraConfig  `json:"camera"`
	Culling CullingConfig `json:"culling"`
	Sun     SunConfig     `json:"sun"`

	// ClearColor is the background color as RGB in [0,1].
	ClearColor [3]float32 `json:"clearColor"`
}

// WindowConfig describes the GLFW window.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

// CameraConfig describes the fly camera's starting state.
type CameraConfig struct {
	Position    [3]float32 `json:"position"`
	MoveSpeed   float32    `json:"moveSpeed"`
	Sensitivity float32    `json:"sensitivity"`
}

// CullingConfig describes the scene manager's visibility policy.
type CullingConfig struct {
	Enabled bool `json:"enabled"`

	// MaxDistance sets the culling radius. Zero or negative keeps the
	// manager's default of 50; values below the 5 unit floor are raised
	// to it.
	MaxDistance float32 `json:"maxDistance"`
}

// SunConfig describes the directional light.
type SunConfig struct {
	Direction       [3]float32 `json:"direction"`
	Color           [3]float32 `json:"color"`
	Intensity       float32    `json:"intensity"`
	AmbientStrength float32    `json:"ambientStrength"`
}
