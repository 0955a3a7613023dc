// Package web carries the host page: the canvas, both shader blocks and the
// wasm loader.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte

// Ids of the page elements the demo reads.
const (
	CanvasID         = "qml-canvas"
	VertexShaderID   = "shader-vs"
	FragmentShaderID = "shader-fs"
	ConfigID         = "demo-config"
)
