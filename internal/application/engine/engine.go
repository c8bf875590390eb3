// Package engine provides the frame loop: it polls input, advances the scene
// one update pass and one render pass per frame, and reports performance.
package engine

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"renderlab/internal/application/state"
	"renderlab/internal/domain/camera"
	"renderlab/internal/domain/scene"
	"renderlab/internal/infrastructure/graphics/light"
	"renderlab/internal/infrastructure/graphics/shader"
)

const (
	nearPlane = 0.1
	farPlane  = 500.0

	// distanceStep is how much one keypress changes the culling radius.
	distanceStep = 5.0

	// statsInterval is how often the performance snapshot is logged, in
	// seconds.
	statsInterval = 1.0
)

// Engine owns the frame loop and wires the camera, lighting, shader and
// scene manager together. It must run on the main OS thread.
type Engine struct {
	window   *glfw.Window
	program  *shader.Program
	cam      *camera.Camera
	lighting light.Lighting
	mgr      *scene.Manager

	clearColor [3]float32
	state      state.EngineState
	focusName  string

	lastFrame  float64
	lastStats  float64
	lastMouseX float64
	lastMouseY float64
	firstMouse bool
}

// New wires an engine together. The scene manager and camera are borrowed,
// not owned; the caller disposes them along with the content library.
func New(window *glfw.Window, program *shader.Program, cam *camera.Camera,
	lighting light.Lighting, mgr *scene.Manager, clearColor [3]float32) *Engine {
	e := &Engine{
		window:     window,
		program:    program,
		cam:        cam,
		lighting:   lighting,
		mgr:        mgr,
		clearColor: clearColor,
		state:      state.StateRunning,
		firstMouse: true,
	}
	e.installCallbacks()
	return e
}

// State returns the current loop state.
func (e *Engine) State() state.EngineState { return e.state }

// SetFocus names the object the V key toggles. Lookup is case-insensitive
// and happens on each press, so the focus survives scene edits.
func (e *Engine) SetFocus(name string) { e.focusName = name }

// Manager returns the scene manager driven by the loop.
func (e *Engine) Manager() *scene.Manager { return e.mgr }

// Run drives update and render passes until the window closes. Pausing stops
// scene updates but keeps rendering, so the view stays live while animation
// freezes.
func (e *Engine) Run() {
	e.lastFrame = glfw.GetTime()
	e.lastStats = e.lastFrame

	for !e.window.ShouldClose() && e.state != state.StateStopping {
		now := glfw.GetTime()
		dt := float32(now - e.lastFrame)
		e.lastFrame = now

		glfw.PollEvents()
		e.processMovement(dt)

		if e.state == state.StateRunning {
			e.mgr.Update(dt)
		}
		e.renderFrame()

		if now-e.lastStats >= statsInterval {
			e.lastStats = now
			log.Printf("[%s] %s", e.state, e.mgr.PerformanceInfo())
		}

		e.window.SwapBuffers()
	}
}

func (e *Engine) renderFrame() {
	gl.ClearColor(e.clearColor[0], e.clearColor[1], e.clearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	width, height := e.window.GetFramebufferSize()
	if height == 0 {
		return
	}
	projection := mgl32.Perspective(
		mgl32.DegToRad(e.cam.FOV()), float32(width)/float32(height), nearPlane, farPlane)

	e.program.Use()
	e.program.SetMat4("projection", projection)
	e.program.SetMat4("view", e.cam.ViewMatrix())
	e.lighting.Apply(e.program, e.cam.Position())

	e.mgr.Render(e.program.Handle(), e.cam.Position())
}

// processMovement handles the held-down movement keys each frame.
func (e *Engine) processMovement(dt float32) {
	if e.window.GetKey(glfw.KeyW) == glfw.Press {
		e.cam.Move(camera.Forward, dt)
	}
	if e.window.GetKey(glfw.KeyS) == glfw.Press {
		e.cam.Move(camera.Backward, dt)
	}
	if e.window.GetKey(glfw.KeyA) == glfw.Press {
		e.cam.Move(camera.Left, dt)
	}
	if e.window.GetKey(glfw.KeyD) == glfw.Press {
		e.cam.Move(camera.Right, dt)
	}
	if e.window.GetKey(glfw.KeySpace) == glfw.Press {
		e.cam.Move(camera.Up, dt)
	}
	if e.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		e.cam.Move(camera.Down, dt)
	}
}

func (e *Engine) installCallbacks() {
	e.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	e.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			e.state = state.StateStopping
		case glfw.KeyP:
			if e.state == state.StatePaused {
				e.state = state.StateRunning
			} else {
				e.state = state.StatePaused
			}
		case glfw.KeyC:
			e.mgr.ToggleDistanceCulling()
			log.Printf("distance culling: %v", e.mgr.CullingEnabled())
		case glfw.KeyMinus:
			e.mgr.AdjustRenderDistance(-distanceStep)
			log.Printf("max render distance: %.1f", e.mgr.MaxRenderDistance())
		case glfw.KeyEqual:
			e.mgr.AdjustRenderDistance(distanceStep)
			log.Printf("max render distance: %.1f", e.mgr.MaxRenderDistance())
		case glfw.KeyV:
			if visible, ok := toggleVisibility(e.mgr, e.focusName); ok {
				log.Printf("%s visible: %v", e.focusName, visible)
			} else {
				log.Printf("no object named %q", e.focusName)
			}
		}
	})

	e.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if e.firstMouse {
			e.lastMouseX, e.lastMouseY = x, y
			e.firstMouse = false
		}
		dx := float32(x - e.lastMouseX)
		dy := float32(e.lastMouseY - y) // reversed: window y grows downward
		e.lastMouseX, e.lastMouseY = x, y
		e.cam.Look(dx, dy)
	})

	e.window.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		e.cam.Zoom(float32(dy))
	})
}

// toggleVisibility flips the named object's visibility. The second return is
// false when no object matches the name.
func toggleVisibility(mgr *scene.Manager, name string) (bool, bool) {
	o := mgr.FindObject(name)
	if o == nil {
		return false, false
	}
	o.SetVisible(!o.Visible())
	return o.Visible(), true
}
