// Package gles exposes the small slice of the WebGL 1 / OpenGL ES 2 API the
// demo needs, behind one interface with a browser and a desktop backend.
package gles

// Handles are plain numbers on every backend. Zero is never a valid object.
type (
	Buffer  struct{ Value uint32 }
	Shader  struct{ Value uint32 }
	Program struct{ Value uint32 }
	Attrib  struct{ Value uint32 }
	Uniform struct{ Value int32 }
)

func (b Buffer) Valid() bool  { return b.Value != 0 }
func (s Shader) Valid() bool  { return s.Value != 0 }
func (p Program) Valid() bool { return p.Value != 0 }

type ShaderKind int

const (
	VertexShader ShaderKind = iota + 1
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

type DrawMode int

const (
	Triangles DrawMode = iota + 1
	TriangleStrip
)

func (m DrawMode) String() string {
	switch m {
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	default:
		return "UNKNOWN"
	}
}

type Usage int

const (
	StaticDraw Usage = iota + 1
	DynamicDraw
)

type ClearMask int

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// ContextAttributes mirrors the WebGLContextAttributes the demo sets.
type ContextAttributes struct {
	Alpha bool
}

// Device is a live rendering context. All calls must come from the goroutine
// that owns the context.
type Device interface {
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int)
	DrawingBufferSize() (width, height int)

	CreateBuffer() (Buffer, error)
	BindBuffer(b Buffer)
	BufferData(data []float32, usage Usage)
	DeleteBuffer(b Buffer)

	CreateShader(kind ShaderKind) (Shader, error)
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() (Program, error)
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	AttribLocation(p Program, name string) (Attrib, bool)
	UniformLocation(p Program, name string) (Uniform, bool)
	EnableVertexAttribArray(a Attrib)
	// VertexAttribPointer describes float32 data in the bound array buffer.
	VertexAttribPointer(a Attrib, size int, normalized bool, stride, offset int)
	UniformMatrix4fv(u Uniform, m [16]float32)

	DrawArrays(mode DrawMode, first, count int)
}
