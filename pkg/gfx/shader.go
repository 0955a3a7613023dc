package gfx

import (
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
)

// Script types used by the host page for shader blocks.
const (
	VertexScriptType   = "x-shader/x-vertex"
	FragmentScriptType = "x-shader/x-fragment"
)

// Program inputs the page's shaders must declare.
const (
	PositionAttribName    = "aVertexPosition"
	ColorAttribName       = "aVertexColor"
	ProjectionUniformName = "uPMatrix"
	ModelViewUniformName  = "uMVMatrix"
)

// Program is a linked shader program with its resolved inputs.
type Program struct {
	ID                gles.Program
	PositionAttrib    gles.Attrib
	ColorAttrib       gles.Attrib
	ProjectionUniform gles.Uniform
	ModelViewUniform  gles.Uniform
}

// Release deletes the program object.
func (p *Program) Release(dev gles.Device) {
	if p == nil || !p.ID.Valid() {
		return
	}
	dev.DeleteProgram(p.ID)
	p.ID = gles.Program{}
}

func ShaderKindOf(scriptType string) (gles.ShaderKind, error) {
	switch scriptType {
	case VertexScriptType:
		return gles.VertexShader, nil
	case FragmentScriptType:
		return gles.FragmentShader, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedShaderKind, scriptType)
	}
}

// CompileProgram builds the program from the page's vertex and fragment
// blocks, makes it current and enables its two vertex attributes.
func CompileProgram(dev gles.Device, doc platform.Document, vertexID, fragmentID string) (*Program, error) {
	vs, err := compileShader(dev, doc, vertexID)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(vs)
	fs, err := compileShader(dev, doc, fragmentID)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(fs)

	id, err := dev.CreateProgram()
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	dev.AttachShader(id, vs)
	dev.AttachShader(id, fs)
	dev.LinkProgram(id)
	if !dev.ProgramLinked(id) {
		log := dev.ProgramInfoLog(id)
		dev.DeleteProgram(id)
		return nil, &ShaderLinkError{Log: log}
	}
	dev.UseProgram(id)

	prog := &Program{ID: id}
	if err := prog.resolve(dev); err != nil {
		dev.DeleteProgram(id)
		return nil, err
	}
	dev.EnableVertexAttribArray(prog.PositionAttrib)
	dev.EnableVertexAttribArray(prog.ColorAttrib)
	Logger().Info("shader program linked", "vertex", vertexID, "fragment", fragmentID)
	return prog, nil
}

func (p *Program) resolve(dev gles.Device) error {
	var ok bool
	if p.PositionAttrib, ok = dev.AttribLocation(p.ID, PositionAttribName); !ok {
		return fmt.Errorf("%w: attribute %s", ErrProgramInputNotFound, PositionAttribName)
	}
	if p.ColorAttrib, ok = dev.AttribLocation(p.ID, ColorAttribName); !ok {
		return fmt.Errorf("%w: attribute %s", ErrProgramInputNotFound, ColorAttribName)
	}
	if p.ProjectionUniform, ok = dev.UniformLocation(p.ID, ProjectionUniformName); !ok {
		return fmt.Errorf("%w: uniform %s", ErrProgramInputNotFound, ProjectionUniformName)
	}
	if p.ModelViewUniform, ok = dev.UniformLocation(p.ID, ModelViewUniformName); !ok {
		return fmt.Errorf("%w: uniform %s", ErrProgramInputNotFound, ModelViewUniformName)
	}
	return nil
}

func compileShader(dev gles.Device, doc platform.Document, id string) (gles.Shader, error) {
	el, ok := doc.Element(id)
	if !ok {
		return gles.Shader{}, fmt.Errorf("%w: %q", ErrShaderSourceNotFound, id)
	}
	kind, err := ShaderKindOf(el.Type)
	if err != nil {
		return gles.Shader{}, fmt.Errorf("shader %q: %w", id, err)
	}

	shader, err := dev.CreateShader(kind)
	if err != nil {
		return gles.Shader{}, fmt.Errorf("create %s shader: %w", kind, err)
	}
	dev.ShaderSource(shader, el.Text)
	dev.CompileShader(shader)
	if !dev.ShaderCompiled(shader) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		return gles.Shader{}, &ShaderCompileError{ID: id, Kind: kind, Log: log}
	}
	return shader, nil
}
