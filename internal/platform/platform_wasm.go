//go:build js && wasm

package platform

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/kjkrol/glstart/internal/gles"
)

// BrowserTiers are tried in order: the standard context first, then the
// prefixed one older browsers ship.
var BrowserTiers = []string{"webgl", "experimental-webgl"}

const textNode = 3

// ---------------- DOCUMENT ----------------

type BrowserDocument struct {
	doc js.Value
}

func NewBrowserDocument() *BrowserDocument {
	return &BrowserDocument{doc: js.Global().Get("document")}
}

func (d *BrowserDocument) Element(id string) (Element, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return Element{}, false
	}
	text := ""
	for k := el.Get("firstChild"); !k.IsNull() && !k.IsUndefined(); k = k.Get("nextSibling") {
		if k.Get("nodeType").Int() == textNode {
			text += k.Get("textContent").String()
		}
	}
	typ := ""
	if t := el.Get("type"); t.Type() == js.TypeString {
		typ = t.String()
	}
	return Element{ID: id, Type: typ, Text: text}, true
}

// ---------------- CANVAS ----------------

type BrowserCanvas struct {
	el js.Value
}

func (d *BrowserDocument) Canvas(id string) (*BrowserCanvas, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", id)
	}
	return &BrowserCanvas{el: el}, nil
}

func (c *BrowserCanvas) ClientSize() (int, int) {
	return c.el.Get("clientWidth").Int(), c.el.Get("clientHeight").Int()
}

func (c *BrowserCanvas) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

func (c *BrowserCanvas) SetSize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
}

// Context calls canvas.getContext. A thrown exception or a null result both
// count as the tier being unavailable.
func (c *BrowserCanvas) Context(tier string, attrs gles.ContextAttributes) (dev gles.Device, err error) {
	defer func() {
		if r := recover(); r != nil {
			dev = nil
			err = fmt.Errorf("getContext(%q): %v", tier, r)
		}
	}()
	v := c.el.Call("getContext", tier, map[string]any{"alpha": attrs.Alpha})
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("getContext(%q) returned null", tier)
	}
	return gles.NewWebGL(v), nil
}

// ---------------- REFRESH ----------------

// FrameScheduler drives callbacks from window.requestAnimationFrame.
type FrameScheduler struct {
	cb      js.Func
	pending func()
}

func NewFrameScheduler() *FrameScheduler {
	s := &FrameScheduler{}
	s.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := s.pending
		s.pending = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return s
}

func (s *FrameScheduler) RequestFrame(fn func()) {
	s.pending = fn
	js.Global().Call("requestAnimationFrame", s.cb)
}

func (s *FrameScheduler) Release() {
	s.pending = nil
	s.cb.Release()
}

// ---------------- NOTIFY ----------------

type AlertNotifier struct{}

func (AlertNotifier) Notify(message string) {
	js.Global().Call("alert", message)
}

// ---------------- EXPORTS ----------------

var errNoWindow = errors.New("no global window object")

// Export publishes fn as window[name] so page scripts can call it. The
// returned release removes the binding.
func Export(name string, fn func()) (release func(), err error) {
	window := js.Global().Get("window")
	if window.IsUndefined() {
		return nil, errNoWindow
	}
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	window.Set(name, f)
	return func() {
		window.Delete(name)
		f.Release()
	}, nil
}
