package gles

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

const webglVertex = `attribute vec3 aVertexPosition;
attribute vec4 aVertexColor;
uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;
varying vec4 vColor;
void main(void) {
    gl_Position = uPMatrix * uMVMatrix * vec4(aVertexPosition, 1.0);
    vColor = aVertexColor;
}`

const webglFragment = `precision mediump float;
varying vec4 vColor;
void main(void) {
    gl_FragColor = vColor;
}
`

func TestDesktopShaderSourceVertex(t *testing.T) {
	src := DesktopShaderSource(VertexShader, webglVertex)
	test.That(t, strings.HasPrefix(src, "#version 330 core\n"))
	test.That(t, strings.Contains(src, "in vec3 aVertexPosition;"))
	test.That(t, strings.Contains(src, "in vec4 aVertexColor;"))
	test.That(t, strings.Contains(src, "out vec4 vColor;"))
	test.That(t, !strings.Contains(src, "attribute"))
	test.That(t, strings.HasSuffix(src, "\n"))
}

func TestDesktopShaderSourceFragment(t *testing.T) {
	src := DesktopShaderSource(FragmentShader, webglFragment)
	test.T(t, src, "#version 330 core\nout vec4 fragColor;\nprecision mediump float;\nin vec4 vColor;\nvoid main(void) {\n    fragColor = vColor;\n}\n")
}

func TestDesktopShaderSourceReplacesVersion(t *testing.T) {
	src := DesktopShaderSource(FragmentShader, "#version 100\nvoid main() { gl_FragColor = texture2D(uTex, vUV); }")
	test.That(t, !strings.Contains(src, "#version 100"))
	test.That(t, strings.Contains(src, "texture(uTex, vUV)"))
	test.T(t, strings.Count(src, "#version"), 1)
}

func TestDesktopShaderSourceKeepsIdentifiers(t *testing.T) {
	// Only whole keywords are rewritten.
	src := DesktopShaderSource(VertexShader, "uniform float attributeScale;\nvarying float varyingValue;\n")
	test.That(t, strings.Contains(src, "attributeScale"))
	test.That(t, strings.Contains(src, "out float varyingValue;"))
}

func TestEnumStrings(t *testing.T) {
	test.String(t, VertexShader.String(), "vertex")
	test.String(t, FragmentShader.String(), "fragment")
	test.String(t, ShaderKind(0).String(), "unknown")
	test.String(t, Triangles.String(), "TRIANGLES")
	test.String(t, TriangleStrip.String(), "TRIANGLE_STRIP")
	test.That(t, !Buffer{}.Valid())
	test.That(t, Program{Value: 3}.Valid())
}
