package gfx

import (
	"errors"
	"testing"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/gles/glestest"
	"github.com/kjkrol/glstart/internal/platform"
	"github.com/tdewolff/test"
)

func TestShaderKindOf(t *testing.T) {
	kind, err := ShaderKindOf("x-shader/x-vertex")
	test.Error(t, err)
	test.T(t, kind, gles.VertexShader)

	kind, err = ShaderKindOf("x-shader/x-fragment")
	test.Error(t, err)
	test.T(t, kind, gles.FragmentShader)

	_, err = ShaderKindOf("text/javascript")
	test.That(t, errors.Is(err, ErrUnrecognizedShaderKind))
}

func TestCompileProgram(t *testing.T) {
	dev := glestest.New(640, 480)
	prog, err := CompileProgram(dev, shaderPage(), "shader-vs", "shader-fs")
	test.Error(t, err)

	test.That(t, prog.ID.Valid())
	test.T(t, dev.Count("CompileShader"), 2)
	test.T(t, dev.Count("UseProgram"), 1)
	test.That(t, dev.AttribEnabled(prog.PositionAttrib))
	test.That(t, dev.AttribEnabled(prog.ColorAttrib))
	test.That(t, prog.PositionAttrib != prog.ColorAttrib)
	test.That(t, prog.ProjectionUniform != prog.ModelViewUniform)

	// stage objects are released once linked
	test.T(t, dev.Count("DeleteShader"), 2)
	test.T(t, dev.LiveObjects(), 1)

	prog.Release(dev)
	test.T(t, dev.LiveObjects(), 0)
	prog.Release(dev)
	test.T(t, dev.Count("DeleteProgram"), 1)
}

func TestCompileProgramMissingSource(t *testing.T) {
	dev := glestest.New(640, 480)
	doc := shaderPage()
	delete(doc, "shader-fs")

	_, err := CompileProgram(dev, doc, "shader-vs", "shader-fs")
	test.That(t, errors.Is(err, ErrShaderSourceNotFound))
	test.T(t, dev.Count("CreateProgram"), 0)
	test.T(t, dev.LiveObjects(), 0)
}

func TestCompileProgramUnrecognizedKind(t *testing.T) {
	dev := glestest.New(640, 480)
	doc := shaderPage()
	doc["shader-vs"] = platform.Element{ID: "shader-vs", Type: "text/plain", Text: vertexSource}

	_, err := CompileProgram(dev, doc, "shader-vs", "shader-fs")
	test.That(t, errors.Is(err, ErrUnrecognizedShaderKind))
	test.T(t, dev.Count("CreateShader"), 0)
	test.T(t, dev.Count("CompileShader"), 0)
}

func TestCompileProgramCompileError(t *testing.T) {
	dev := glestest.New(640, 480)
	dev.CompileLog = map[gles.ShaderKind]string{
		gles.FragmentShader: "ERROR: 0:3: 'vColour' : undeclared identifier",
	}

	_, err := CompileProgram(dev, shaderPage(), "shader-vs", "shader-fs")
	test.That(t, errors.Is(err, ErrShaderCompile))

	var compileErr *ShaderCompileError
	test.That(t, errors.As(err, &compileErr))
	test.String(t, compileErr.ID, "shader-fs")
	test.T(t, compileErr.Kind, gles.FragmentShader)
	test.String(t, compileErr.Log, "ERROR: 0:3: 'vColour' : undeclared identifier")
	test.T(t, dev.Count("CreateProgram"), 0)
	test.T(t, dev.LiveObjects(), 0)
}

func TestCompileProgramLinkError(t *testing.T) {
	dev := glestest.New(640, 480)
	dev.LinkLog = "varyings do not match"

	_, err := CompileProgram(dev, shaderPage(), "shader-vs", "shader-fs")
	test.That(t, errors.Is(err, ErrShaderLink))

	var linkErr *ShaderLinkError
	test.That(t, errors.As(err, &linkErr))
	test.String(t, linkErr.Log, "varyings do not match")
	test.T(t, dev.Count("UseProgram"), 0)
	test.T(t, dev.LiveObjects(), 0)
}

func TestCompileProgramMissingInput(t *testing.T) {
	for _, name := range []string{PositionAttribName, ColorAttribName, ProjectionUniformName, ModelViewUniformName} {
		t.Run(name, func(t *testing.T) {
			dev := glestest.New(640, 480)
			dev.HiddenInputs = map[string]bool{name: true}

			_, err := CompileProgram(dev, shaderPage(), "shader-vs", "shader-fs")
			test.That(t, errors.Is(err, ErrProgramInputNotFound))
			test.T(t, dev.Count("EnableVertexAttribArray"), 0)
			test.T(t, dev.LiveObjects(), 0)
		})
	}
}
