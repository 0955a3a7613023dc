package gles

import (
	"regexp"
	"strings"
)

const fragOutput = "fragColor"

var (
	versionLine  = regexp.MustCompile(`(?m)^[ \t]*#version[^\n]*\n?`)
	attributeKw  = regexp.MustCompile(`\battribute\b`)
	varyingKw    = regexp.MustCompile(`\bvarying\b`)
	fragColorVar = regexp.MustCompile(`\bgl_FragColor\b`)
	texture2DFn  = regexp.MustCompile(`\btexture2D\b`)
)

// DesktopShaderSource rewrites GLSL ES 1.00 (the WebGL 1 dialect found in the
// host page) into GLSL 330 core so a core-profile desktop context accepts it.
// Precision statements are legal in 330 and are kept.
func DesktopShaderSource(kind ShaderKind, source string) string {
	body := versionLine.ReplaceAllString(source, "")
	body = texture2DFn.ReplaceAllString(body, "texture")

	var sb strings.Builder
	sb.WriteString("#version 330 core\n")
	switch kind {
	case VertexShader:
		body = attributeKw.ReplaceAllString(body, "in")
		body = varyingKw.ReplaceAllString(body, "out")
	case FragmentShader:
		body = varyingKw.ReplaceAllString(body, "in")
		if fragColorVar.MatchString(body) {
			body = fragColorVar.ReplaceAllString(body, fragOutput)
			sb.WriteString("out vec4 " + fragOutput + ";\n")
		}
	}
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
