package platform

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

const page = `<!DOCTYPE html>
<html>
<head>
<script id="shader-fs" type="x-shader/x-fragment">
  precision mediump float;
  void main(void) { gl_FragColor = vec4(1.0); }
</script>
<script id="shader-vs" type="x-shader/x-vertex">attribute vec3 aVertexPosition;</script>
</head>
<body><div id="wrap"><canvas id="qml-canvas"></canvas><p id="mixed">a<b>skip</b>c</p></div></body>
</html>`

func TestHTMLDocumentElement(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(page))
	test.Error(t, err)

	vs, ok := doc.Element("shader-vs")
	test.That(t, ok)
	test.String(t, vs.Type, "x-shader/x-vertex")
	test.String(t, vs.Text, "attribute vec3 aVertexPosition;")

	fs, ok := doc.Element("shader-fs")
	test.That(t, ok)
	test.String(t, fs.Type, "x-shader/x-fragment")
	test.That(t, strings.Contains(fs.Text, "gl_FragColor = vec4(1.0);"))

	canvas, ok := doc.Element("qml-canvas")
	test.That(t, ok)
	test.String(t, canvas.Type, "")
	test.String(t, canvas.Text, "")
}

func TestHTMLDocumentDirectTextOnly(t *testing.T) {
	doc, err := ParseHTMLBytes([]byte(page))
	test.Error(t, err)

	mixed, ok := doc.Element("mixed")
	test.That(t, ok)
	test.String(t, mixed.Text, "ac")
}

func TestHTMLDocumentMissing(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(page))
	test.Error(t, err)

	_, ok := doc.Element("shader-gs")
	test.That(t, !ok)
}
