//go:build !js && cgo

package gles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GL is a Device backed by a desktop OpenGL 3.2+ core context. The context
// must be current on the calling thread for the lifetime of the device.
type GL struct {
	size  func() (int, int)
	vao   uint32
	kinds map[uint32]ShaderKind
}

// NewGL loads the GL entry points for the current context. size reports the
// framebuffer size in pixels.
func NewGL(size func() (int, int)) (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	d := &GL{size: size, kinds: make(map[uint32]ShaderKind)}
	// Core profiles reject attribute setup without a bound vertex array.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.Disable(gl.DEPTH_TEST)
	return d, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *GL) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *GL) Clear(mask ClearMask) {
	var bits uint32
	if mask&ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *GL) DrawingBufferSize() (int, int) {
	if d.size == nil {
		return 0, 0
	}
	return d.size()
}

func (d *GL) CreateBuffer() (Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return Buffer{}, errors.New("gles: glGenBuffers returned 0")
	}
	return Buffer{id}, nil
}

func (d *GL) BindBuffer(b Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.Value)
}

func (d *GL) BufferData(data []float32, usage Usage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
}

func (d *GL) DeleteBuffer(b Buffer) {
	if b.Value != 0 {
		gl.DeleteBuffers(1, &b.Value)
	}
}

func (d *GL) CreateShader(kind ShaderKind) (Shader, error) {
	typ := uint32(gl.VERTEX_SHADER)
	if kind == FragmentShader {
		typ = gl.FRAGMENT_SHADER
	}
	id := gl.CreateShader(typ)
	if id == 0 {
		return Shader{}, fmt.Errorf("gles: glCreateShader(%s) returned 0", kind)
	}
	d.kinds[id] = kind
	return Shader{id}, nil
}

func (d *GL) ShaderSource(s Shader, source string) {
	csources, free := gl.Strs(DesktopShaderSource(d.kinds[s.Value], source) + "\x00")
	gl.ShaderSource(s.Value, 1, csources, nil)
	free()
}

func (d *GL) CompileShader(s Shader) {
	gl.CompileShader(s.Value)
}

func (d *GL) ShaderCompiled(s Shader) bool {
	var status int32
	gl.GetShaderiv(s.Value, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *GL) ShaderInfoLog(s Shader) string {
	var logLength int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s.Value, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *GL) DeleteShader(s Shader) {
	delete(d.kinds, s.Value)
	gl.DeleteShader(s.Value)
}

func (d *GL) CreateProgram() (Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return Program{}, errors.New("gles: glCreateProgram returned 0")
	}
	return Program{id}, nil
}

func (d *GL) AttachShader(p Program, s Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (d *GL) LinkProgram(p Program) {
	gl.LinkProgram(p.Value)
}

func (d *GL) ProgramLinked(p Program) bool {
	var status int32
	gl.GetProgramiv(p.Value, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *GL) ProgramInfoLog(p Program) string {
	var logLength int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(p.Value, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *GL) UseProgram(p Program) {
	gl.UseProgram(p.Value)
}

func (d *GL) DeleteProgram(p Program) {
	gl.DeleteProgram(p.Value)
}

func (d *GL) AttribLocation(p Program, name string) (Attrib, bool) {
	loc := gl.GetAttribLocation(p.Value, gl.Str(name+"\x00"))
	if loc < 0 {
		return Attrib{}, false
	}
	return Attrib{uint32(loc)}, true
}

func (d *GL) UniformLocation(p Program, name string) (Uniform, bool) {
	loc := gl.GetUniformLocation(p.Value, gl.Str(name+"\x00"))
	return Uniform{loc}, loc >= 0
}

func (d *GL) EnableVertexAttribArray(a Attrib) {
	gl.EnableVertexAttribArray(a.Value)
}

func (d *GL) VertexAttribPointer(a Attrib, size int, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(a.Value, int32(size), gl.FLOAT, normalized, int32(stride), gl.PtrOffset(offset))
}

func (d *GL) UniformMatrix4fv(u Uniform, m [16]float32) {
	gl.UniformMatrix4fv(u.Value, 1, false, &m[0])
}

func (d *GL) DrawArrays(mode DrawMode, first, count int) {
	glMode := uint32(gl.TRIANGLES)
	if mode == TriangleStrip {
		glMode = gl.TRIANGLE_STRIP
	}
	gl.DrawArrays(glMode, int32(first), int32(count))
}
