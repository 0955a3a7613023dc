// Package glestest provides an in-memory gles.Device for tests.
package glestest

import (
	"errors"
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
)

var ErrInjected = errors.New("glestest: injected failure")

// Call is one recorded Device method invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// AttribBinding is what an attribute slot was pointed at.
type AttribBinding struct {
	Buffer     gles.Buffer
	Size       int
	Normalized bool
	Stride     int
	Offset     int
}

// DrawCall snapshots the pipeline state at DrawArrays time.
type DrawCall struct {
	Mode     gles.DrawMode
	First    int
	Count    int
	Program  gles.Program
	Attribs  map[gles.Attrib]AttribBinding
	Uniforms map[gles.Uniform][16]float32
}

// BufferObject is the recorded content of a buffer.
type BufferObject struct {
	Data    []float32
	Usage   gles.Usage
	Deleted bool
}

type shaderObject struct {
	kind     gles.ShaderKind
	source   string
	compiled bool
	deleted  bool
}

type programObject struct {
	shaders []gles.Shader
	linked  bool
	deleted bool
}

// Recorder is a gles.Device that records every call and keeps enough state to
// assert on draw calls. The zero value is not usable, use New.
type Recorder struct {
	Calls     []Call
	Draws     []DrawCall
	Viewports [][4]int
	Clears    []gles.ClearMask

	Width, Height int
	ClearRGBA     [4]float32

	// Failure injection.
	CompileLog   map[gles.ShaderKind]string
	LinkLog      string
	FailCreate   bool
	HiddenInputs map[string]bool

	nextID   uint32
	bound    gles.Buffer
	program  gles.Program
	buffers  map[uint32]*BufferObject
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	attribs  map[string]gles.Attrib
	uniforms map[string]gles.Uniform
	enabled  map[gles.Attrib]bool
	bindings map[gles.Attrib]AttribBinding
	values   map[gles.Uniform][16]float32
}

var _ gles.Device = (*Recorder)(nil)

// New returns a Recorder whose drawing buffer is width x height.
func New(width, height int) *Recorder {
	return &Recorder{
		Width:    width,
		Height:   height,
		buffers:  make(map[uint32]*BufferObject),
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
		attribs:  make(map[string]gles.Attrib),
		uniforms: make(map[string]gles.Uniform),
		enabled:  make(map[gles.Attrib]bool),
		bindings: make(map[gles.Attrib]AttribBinding),
		values:   make(map[gles.Uniform][16]float32),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Count returns how many times the named method was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset drops recorded calls and draws but keeps object state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
	r.Viewports = nil
	r.Clears = nil
}

func (r *Recorder) Buffer(b gles.Buffer) (BufferObject, bool) {
	obj, ok := r.buffers[b.Value]
	if !ok {
		return BufferObject{}, false
	}
	return *obj, true
}

// LiveObjects counts buffers, shaders and programs not yet deleted.
func (r *Recorder) LiveObjects() int {
	n := 0
	for _, b := range r.buffers {
		if !b.Deleted {
			n++
		}
	}
	for _, s := range r.shaders {
		if !s.deleted {
			n++
		}
	}
	for _, p := range r.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

func (r *Recorder) AttribEnabled(a gles.Attrib) bool {
	return r.enabled[a]
}

func (r *Recorder) ShaderSourceOf(s gles.Shader) string {
	if obj, ok := r.shaders[s.Value]; ok {
		return obj.source
	}
	return ""
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gles.ClearMask) {
	r.record("Clear", mask)
	r.Clears = append(r.Clears, mask)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
	r.Viewports = append(r.Viewports, [4]int{x, y, width, height})
}

func (r *Recorder) DrawingBufferSize() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) newID() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) CreateBuffer() (gles.Buffer, error) {
	r.record("CreateBuffer")
	if r.FailCreate {
		return gles.Buffer{}, ErrInjected
	}
	id := r.newID()
	r.buffers[id] = &BufferObject{}
	return gles.Buffer{Value: id}, nil
}

func (r *Recorder) BindBuffer(b gles.Buffer) {
	r.record("BindBuffer", b)
	r.bound = b
}

func (r *Recorder) BufferData(data []float32, usage gles.Usage) {
	r.record("BufferData", len(data), usage)
	obj, ok := r.buffers[r.bound.Value]
	if !ok {
		return
	}
	obj.Data = append([]float32(nil), data...)
	obj.Usage = usage
}

func (r *Recorder) DeleteBuffer(b gles.Buffer) {
	r.record("DeleteBuffer", b)
	if obj, ok := r.buffers[b.Value]; ok {
		obj.Deleted = true
	}
}

func (r *Recorder) CreateShader(kind gles.ShaderKind) (gles.Shader, error) {
	r.record("CreateShader", kind)
	if r.FailCreate {
		return gles.Shader{}, ErrInjected
	}
	id := r.newID()
	r.shaders[id] = &shaderObject{kind: kind}
	return gles.Shader{Value: id}, nil
}

func (r *Recorder) ShaderSource(s gles.Shader, source string) {
	r.record("ShaderSource", s)
	if obj, ok := r.shaders[s.Value]; ok {
		obj.source = source
	}
}

func (r *Recorder) CompileShader(s gles.Shader) {
	r.record("CompileShader", s)
	obj, ok := r.shaders[s.Value]
	if !ok {
		return
	}
	_, fail := r.CompileLog[obj.kind]
	obj.compiled = !fail
}

func (r *Recorder) ShaderCompiled(s gles.Shader) bool {
	obj, ok := r.shaders[s.Value]
	return ok && obj.compiled
}

func (r *Recorder) ShaderInfoLog(s gles.Shader) string {
	if obj, ok := r.shaders[s.Value]; ok {
		return r.CompileLog[obj.kind]
	}
	return ""
}

func (r *Recorder) DeleteShader(s gles.Shader) {
	r.record("DeleteShader", s)
	if obj, ok := r.shaders[s.Value]; ok {
		obj.deleted = true
	}
}

func (r *Recorder) CreateProgram() (gles.Program, error) {
	r.record("CreateProgram")
	if r.FailCreate {
		return gles.Program{}, ErrInjected
	}
	id := r.newID()
	r.programs[id] = &programObject{}
	return gles.Program{Value: id}, nil
}

func (r *Recorder) AttachShader(p gles.Program, s gles.Shader) {
	r.record("AttachShader", p, s)
	if obj, ok := r.programs[p.Value]; ok {
		obj.shaders = append(obj.shaders, s)
	}
}

func (r *Recorder) LinkProgram(p gles.Program) {
	r.record("LinkProgram", p)
	obj, ok := r.programs[p.Value]
	if !ok {
		return
	}
	obj.linked = r.LinkLog == ""
	for _, s := range obj.shaders {
		if sh, ok := r.shaders[s.Value]; !ok || !sh.compiled {
			obj.linked = false
		}
	}
}

func (r *Recorder) ProgramLinked(p gles.Program) bool {
	obj, ok := r.programs[p.Value]
	return ok && obj.linked
}

func (r *Recorder) ProgramInfoLog(p gles.Program) string {
	return r.LinkLog
}

func (r *Recorder) UseProgram(p gles.Program) {
	r.record("UseProgram", p)
	r.program = p
}

func (r *Recorder) DeleteProgram(p gles.Program) {
	r.record("DeleteProgram", p)
	if obj, ok := r.programs[p.Value]; ok {
		obj.deleted = true
	}
}

func (r *Recorder) AttribLocation(p gles.Program, name string) (gles.Attrib, bool) {
	r.record("AttribLocation", p, name)
	if r.HiddenInputs[name] {
		return gles.Attrib{}, false
	}
	a, ok := r.attribs[name]
	if !ok {
		a = gles.Attrib{Value: uint32(len(r.attribs))}
		r.attribs[name] = a
	}
	return a, true
}

func (r *Recorder) UniformLocation(p gles.Program, name string) (gles.Uniform, bool) {
	r.record("UniformLocation", p, name)
	if r.HiddenInputs[name] {
		return gles.Uniform{Value: -1}, false
	}
	u, ok := r.uniforms[name]
	if !ok {
		u = gles.Uniform{Value: int32(len(r.uniforms))}
		r.uniforms[name] = u
	}
	return u, true
}

func (r *Recorder) EnableVertexAttribArray(a gles.Attrib) {
	r.record("EnableVertexAttribArray", a)
	r.enabled[a] = true
}

func (r *Recorder) VertexAttribPointer(a gles.Attrib, size int, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", a, size, normalized, stride, offset)
	r.bindings[a] = AttribBinding{
		Buffer:     r.bound,
		Size:       size,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (r *Recorder) UniformMatrix4fv(u gles.Uniform, m [16]float32) {
	r.record("UniformMatrix4fv", u)
	r.values[u] = m
}

func (r *Recorder) DrawArrays(mode gles.DrawMode, first, count int) {
	r.record("DrawArrays", mode, first, count)
	draw := DrawCall{
		Mode:     mode,
		First:    first,
		Count:    count,
		Program:  r.program,
		Attribs:  make(map[gles.Attrib]AttribBinding, len(r.bindings)),
		Uniforms: make(map[gles.Uniform][16]float32, len(r.values)),
	}
	for a, b := range r.bindings {
		if r.enabled[a] {
			draw.Attribs[a] = b
		}
	}
	for u, v := range r.values {
		draw.Uniforms[u] = v
	}
	r.Draws = append(r.Draws, draw)
}
