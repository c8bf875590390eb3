// Command viewer opens a window and renders a configured scene with the
// Phong pipeline, a fly camera and distance culling.
//
// Controls: WASD + mouse to fly, space/shift for up/down, C toggles distance
// culling, -/= adjust the culling radius, V toggles the focus object's
// visibility, P pauses animation, Esc quits.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/application/engine"
	"renderlab/internal/application/setup"
	"renderlab/internal/domain/camera"
	"renderlab/internal/infrastructure/config"
	"renderlab/internal/infrastructure/graphics/light"
	"renderlab/internal/infrastructure/graphics/shader"
	"renderlab/internal/infrastructure/library"
	"renderlab/internal/platform"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configDir := flag.String("config", "configs", "config directory")
	assetDir := flag.String("assets", "assets", "asset root for models and textures")
	sceneName := flag.String("scene", "default", "scene to load")
	focusName := flag.String("focus", "", "object the V key toggles (default: first in the scene)")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	engCfg, err := loader.LoadEngine()
	if err != nil {
		log.Fatalf("load engine config: %v", err)
	}
	sceneCfg, err := loader.LoadScene(*sceneName)
	if err != nil {
		log.Fatalf("load scene config: %v", err)
	}

	window, err := platform.InitWindow(
		engCfg.Window.Width, engCfg.Window.Height, engCfg.Window.Title, engCfg.Window.VSync)
	if err != nil {
		log.Fatalf("open window: %v", err)
	}
	defer platform.Terminate()

	program, err := shader.NewPhong()
	if err != nil {
		log.Fatalf("compile shaders: %v", err)
	}
	defer program.Delete()

	lib := library.New(os.DirFS(*assetDir))
	defer lib.Dispose()

	mgr, err := setup.BuildScene(sceneCfg, engCfg.Culling, lib)
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	defer mgr.Dispose()
	lib.UploadAll()

	log.Printf("scene %q: %d objects, %d library entries",
		sceneCfg.Name, mgr.TotalObjects(), lib.Len())

	cam := camera.New(mgl32.Vec3(engCfg.Camera.Position))
	if engCfg.Camera.MoveSpeed > 0 {
		cam.MoveSpeed = engCfg.Camera.MoveSpeed
	}
	if engCfg.Camera.Sensitivity > 0 {
		cam.Sensitivity = engCfg.Camera.Sensitivity
	}

	eng := engine.New(window, program, cam, sunFromConfig(engCfg.Sun), mgr, engCfg.ClearColor)
	if *focusName != "" {
		eng.SetFocus(*focusName)
	} else if len(sceneCfg.Objects) > 0 {
		eng.SetFocus(sceneCfg.Objects[0].Name)
	}
	eng.Run()
}

// sunFromConfig builds the lighting state, falling back to the default sun
// when the config leaves the direction unset.
func sunFromConfig(cfg config.SunConfig) light.Lighting {
	dir := mgl32.Vec3(cfg.Direction)
	if dir.Len() == 0 {
		return light.Lighting{Sun: light.DefaultSun()}
	}
	return light.Lighting{Sun: light.Directional{
		Direction:       dir.Normalize(),
		Color:           mgl32.Vec3(cfg.Color),
		Intensity:       cfg.Intensity,
		AmbientStrength: cfg.AmbientStrength,
	}}
}
