package gfx

import (
	"errors"
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
)

var (
	ErrContextUnavailable      = errors.New("rendering context unavailable")
	ErrShaderSourceNotFound    = errors.New("shader source not found")
	ErrUnrecognizedShaderKind  = errors.New("unrecognized shader kind")
	ErrShaderCompile           = errors.New("shader compile failed")
	ErrShaderLink              = errors.New("shader link failed")
	ErrProgramInputNotFound    = errors.New("program input not found")
	ErrTransformStackUnderflow = errors.New("transform stack underflow")
	ErrInvalidBuffer           = errors.New("invalid vertex buffer")
)

// ShaderCompileError carries the driver's info log for a stage that did not
// compile.
type ShaderCompileError struct {
	ID   string
	Kind gles.ShaderKind
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader %q: %s", e.Kind, e.ID, e.Log)
}

func (e *ShaderCompileError) Is(target error) bool {
	return target == ErrShaderCompile
}

type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("link shader program: %s", e.Log)
}

func (e *ShaderLinkError) Is(target error) bool {
	return target == ErrShaderLink
}
