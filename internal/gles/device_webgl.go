//go:build js && wasm

package gles

import (
	"errors"
	"syscall/js"
	"unsafe"
)

var errContextLost = errors.New("gles: webgl returned null, context lost")

type webglConsts struct {
	arrayBuffer    int
	staticDraw     int
	dynamicDraw    int
	floatType      int
	triangles      int
	triangleStrip  int
	colorBufferBit int
	depthBufferBit int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
}

// WebGL is a Device backed by a browser WebGLRenderingContext.
type WebGL struct {
	gl     js.Value
	consts webglConsts

	objects  map[uint32]js.Value
	uniforms map[int32]js.Value
	nextID   uint32
	nextLoc  int32
}

// NewWebGL wraps the value returned by canvas.getContext.
func NewWebGL(gl js.Value) *WebGL {
	d := &WebGL{
		gl:       gl,
		objects:  make(map[uint32]js.Value),
		uniforms: make(map[int32]js.Value),
	}
	d.initConsts()
	return d
}

func (d *WebGL) initConsts() {
	d.consts = webglConsts{
		arrayBuffer:    d.gl.Get("ARRAY_BUFFER").Int(),
		staticDraw:     d.gl.Get("STATIC_DRAW").Int(),
		dynamicDraw:    d.gl.Get("DYNAMIC_DRAW").Int(),
		floatType:      d.gl.Get("FLOAT").Int(),
		triangles:      d.gl.Get("TRIANGLES").Int(),
		triangleStrip:  d.gl.Get("TRIANGLE_STRIP").Int(),
		colorBufferBit: d.gl.Get("COLOR_BUFFER_BIT").Int(),
		depthBufferBit: d.gl.Get("DEPTH_BUFFER_BIT").Int(),
		compileStatus:  d.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:     d.gl.Get("LINK_STATUS").Int(),
		vertexShader:   d.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader: d.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (d *WebGL) track(v js.Value) (uint32, error) {
	if v.IsNull() || v.IsUndefined() {
		return 0, errContextLost
	}
	d.nextID++
	d.objects[d.nextID] = v
	return d.nextID, nil
}

func (d *WebGL) object(id uint32) js.Value {
	v, ok := d.objects[id]
	if !ok {
		return js.Null()
	}
	return v
}

func (d *WebGL) forget(id uint32) js.Value {
	v := d.object(id)
	delete(d.objects, id)
	return v
}

func (d *WebGL) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

func (d *WebGL) Clear(mask ClearMask) {
	bits := 0
	if mask&ColorBufferBit != 0 {
		bits |= d.consts.colorBufferBit
	}
	if mask&DepthBufferBit != 0 {
		bits |= d.consts.depthBufferBit
	}
	d.gl.Call("clear", bits)
}

func (d *WebGL) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

func (d *WebGL) DrawingBufferSize() (int, int) {
	return d.gl.Get("drawingBufferWidth").Int(), d.gl.Get("drawingBufferHeight").Int()
}

func (d *WebGL) CreateBuffer() (Buffer, error) {
	id, err := d.track(d.gl.Call("createBuffer"))
	return Buffer{id}, err
}

func (d *WebGL) BindBuffer(b Buffer) {
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, d.object(b.Value))
}

func (d *WebGL) BufferData(data []float32, usage Usage) {
	hint := d.consts.staticDraw
	if usage == DynamicDraw {
		hint = d.consts.dynamicDraw
	}
	d.gl.Call("bufferData", d.consts.arrayBuffer, float32Array(data), hint)
}

func (d *WebGL) DeleteBuffer(b Buffer) {
	if v := d.forget(b.Value); v.Truthy() {
		d.gl.Call("deleteBuffer", v)
	}
}

func (d *WebGL) CreateShader(kind ShaderKind) (Shader, error) {
	typ := d.consts.vertexShader
	if kind == FragmentShader {
		typ = d.consts.fragmentShader
	}
	id, err := d.track(d.gl.Call("createShader", typ))
	return Shader{id}, err
}

func (d *WebGL) ShaderSource(s Shader, source string) {
	d.gl.Call("shaderSource", d.object(s.Value), source)
}

func (d *WebGL) CompileShader(s Shader) {
	d.gl.Call("compileShader", d.object(s.Value))
}

func (d *WebGL) ShaderCompiled(s Shader) bool {
	return d.gl.Call("getShaderParameter", d.object(s.Value), d.consts.compileStatus).Truthy()
}

func (d *WebGL) ShaderInfoLog(s Shader) string {
	log := d.gl.Call("getShaderInfoLog", d.object(s.Value))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (d *WebGL) DeleteShader(s Shader) {
	if v := d.forget(s.Value); v.Truthy() {
		d.gl.Call("deleteShader", v)
	}
}

func (d *WebGL) CreateProgram() (Program, error) {
	id, err := d.track(d.gl.Call("createProgram"))
	return Program{id}, err
}

func (d *WebGL) AttachShader(p Program, s Shader) {
	d.gl.Call("attachShader", d.object(p.Value), d.object(s.Value))
}

func (d *WebGL) LinkProgram(p Program) {
	d.gl.Call("linkProgram", d.object(p.Value))
}

func (d *WebGL) ProgramLinked(p Program) bool {
	return d.gl.Call("getProgramParameter", d.object(p.Value), d.consts.linkStatus).Truthy()
}

func (d *WebGL) ProgramInfoLog(p Program) string {
	log := d.gl.Call("getProgramInfoLog", d.object(p.Value))
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (d *WebGL) UseProgram(p Program) {
	d.gl.Call("useProgram", d.object(p.Value))
}

func (d *WebGL) DeleteProgram(p Program) {
	if v := d.forget(p.Value); v.Truthy() {
		d.gl.Call("deleteProgram", v)
	}
}

func (d *WebGL) AttribLocation(p Program, name string) (Attrib, bool) {
	loc := d.gl.Call("getAttribLocation", d.object(p.Value), name).Int()
	if loc < 0 {
		return Attrib{}, false
	}
	return Attrib{uint32(loc)}, true
}

func (d *WebGL) UniformLocation(p Program, name string) (Uniform, bool) {
	loc := d.gl.Call("getUniformLocation", d.object(p.Value), name)
	if loc.IsNull() || loc.IsUndefined() {
		return Uniform{-1}, false
	}
	id := d.nextLoc
	d.nextLoc++
	d.uniforms[id] = loc
	return Uniform{id}, true
}

func (d *WebGL) EnableVertexAttribArray(a Attrib) {
	d.gl.Call("enableVertexAttribArray", a.Value)
}

func (d *WebGL) VertexAttribPointer(a Attrib, size int, normalized bool, stride, offset int) {
	d.gl.Call("vertexAttribPointer", a.Value, size, d.consts.floatType, normalized, stride, offset)
}

func (d *WebGL) UniformMatrix4fv(u Uniform, m [16]float32) {
	loc, ok := d.uniforms[u.Value]
	if !ok {
		return
	}
	d.gl.Call("uniformMatrix4fv", loc, false, float32Array(m[:]))
}

func (d *WebGL) DrawArrays(mode DrawMode, first, count int) {
	glMode := d.consts.triangles
	if mode == TriangleStrip {
		glMode = d.consts.triangleStrip
	}
	d.gl.Call("drawArrays", glMode, first, count)
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	if len(data) == 0 {
		return arr
	}
	buf := arr.Get("buffer")
	view := js.Global().Get("Uint8Array").New(buf, arr.Get("byteOffset"), arr.Get("byteLength"))
	js.CopyBytesToJS(view, float32Bytes(data))
	return arr
}

func float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
