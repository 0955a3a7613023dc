package gfx

import (
	"fmt"
	"math"
	"testing"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/gles/glestest"
	"github.com/kjkrol/glstart/internal/platform"
	"github.com/tdewolff/test"
)

const vertexSource = `attribute vec3 aVertexPosition;
attribute vec4 aVertexColor;
uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;
varying vec4 vColor;
void main(void) {
  gl_Position = uPMatrix * uMVMatrix * vec4(aVertexPosition, 1.0);
  vColor = aVertexColor;
}`

const fragmentSource = `precision mediump float;
varying vec4 vColor;
void main(void) {
  gl_FragColor = vColor;
}`

type mapDocument map[string]platform.Element

func (d mapDocument) Element(id string) (platform.Element, bool) {
	el, ok := d[id]
	return el, ok
}

func shaderPage() mapDocument {
	return mapDocument{
		"shader-vs": {ID: "shader-vs", Type: VertexScriptType, Text: vertexSource},
		"shader-fs": {ID: "shader-fs", Type: FragmentScriptType, Text: fragmentSource},
	}
}

// fakeCanvas hands out a Recorder whose drawing buffer follows the backing
// size, the way a browser canvas does.
type fakeCanvas struct {
	dev      *glestest.Recorder
	client   [2]int
	size     [2]int
	refuse   map[string]bool
	asked    []string
	presents int
}

func newFakeCanvas(width, height int) *fakeCanvas {
	return &fakeCanvas{
		dev:    glestest.New(300, 150),
		client: [2]int{width, height},
		size:   [2]int{300, 150},
	}
}

func (c *fakeCanvas) ClientSize() (int, int) { return c.client[0], c.client[1] }
func (c *fakeCanvas) Size() (int, int)       { return c.size[0], c.size[1] }

func (c *fakeCanvas) SetSize(width, height int) {
	c.size = [2]int{width, height}
	c.dev.Width, c.dev.Height = width, height
}

func (c *fakeCanvas) Context(tier string, attrs gles.ContextAttributes) (gles.Device, error) {
	c.asked = append(c.asked, tier)
	if c.refuse[tier] {
		return nil, fmt.Errorf("%s: not supported", tier)
	}
	return c.dev, nil
}

func (c *fakeCanvas) Present() { c.presents++ }

// manualScheduler queues frames until the test runs them.
type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// step runs the frames queued so far and reports how many ran.
func (s *manualScheduler) step() int {
	frames := s.pending
	s.pending = nil
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func floatNear(t *testing.T, got float32, want float64) {
	t.Helper()
	test.That(t, math.Abs(float64(got)-want) < 1e-5, fmt.Sprintf("%v != %v", got, want))
}
