// Package shader compiles GLSL programs and provides cached uniform setters.
package shader

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/phong.vert
var phongVertexSource string

//go:embed shaders/phong.frag
var phongFragmentSource string

// Program wraps a linked GL shader program and caches uniform locations.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewPhong compiles the built-in Phong lighting program.
func NewPhong() (*Program, error) {
	return Compile(phongVertexSource, phongFragmentSource)
}

// Compile builds and links a program from vertex and fragment sources.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link failed: %v", infoLog)
	}

	return &Program{handle: handle, locations: make(map[string]int32)}, nil
}

func compileStage(src string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", infoLog)
	}
	return shader, nil
}

// Handle returns the raw GL program handle, the opaque token the scene layer
// passes through to drawables.
func (p *Program) Handle() uint32 { return p.handle }

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Delete frees the GL program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.location(name), f)
}

// SetInt sets an int uniform (also used for sampler bindings).
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.location(name), i)
}

// SetBool sets a bool uniform as 0/1.
func (p *Program) SetBool(name string, b bool) {
	var v int32
	if b {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}
