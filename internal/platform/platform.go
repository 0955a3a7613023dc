// Package platform connects the renderer to its host: the drawable surface,
// the page that carries shader sources, the display refresh signal and the
// user-facing notification channel.
package platform

import "github.com/kjkrol/glstart/internal/gles"

// Surface is the drawable region. ClientSize is what the host lays out on
// screen; Size is the backing store the context renders into.
type Surface interface {
	ClientSize() (width, height int)
	Size() (width, height int)
	SetSize(width, height int)
}

// Canvas is a Surface that can hand out a rendering context for an API tier
// (for example "webgl" or "gl-3.3-core").
type Canvas interface {
	Surface
	Context(tier string, attrs gles.ContextAttributes) (gles.Device, error)
}

// Presenter is implemented by canvases that need an explicit buffer swap
// after a frame was drawn. Browsers present implicitly.
type Presenter interface {
	Present()
}

// Scheduler runs fn once on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// Element is a text block of the host page, such as a <script> carrying
// shader source.
type Element struct {
	ID   string
	Type string
	Text string
}

type Document interface {
	Element(id string) (Element, bool)
}
