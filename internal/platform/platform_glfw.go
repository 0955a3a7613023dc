//go:build !js && cgo

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/glstart/internal/gles"
)

// DesktopTiers mirror the browser fallback: the preferred core profile first,
// then the oldest one that still runs the translated shaders.
var DesktopTiers = []string{"gl-3.3-core", "gl-3.2-core"}

var desktopVersions = map[string][2]int{
	"gl-3.3-core": {3, 3},
	"gl-3.2-core": {3, 2},
}

const frameInterval = time.Second / 60

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Window is a GLFW window acting as Canvas, Scheduler, Presenter and
// Notifier. glfw.Init must have been called on the main OS thread.
type Window struct {
	conf      WindowConfig
	win       *glfw.Window
	device    *gles.GL
	width     int
	height    int
	pending   func()
	presented bool
	onRefresh func()
}

func NewWindow(conf WindowConfig) *Window {
	return &Window{conf: conf}
}

func (w *Window) Context(tier string, attrs gles.ContextAttributes) (gles.Device, error) {
	version, ok := desktopVersions[tier]
	if !ok {
		return nil, fmt.Errorf("unknown context tier %q", tier)
	}
	if w.win != nil {
		return nil, fmt.Errorf("window already has a %d.%d context", version[0], version[1])
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, version[0])
	glfw.WindowHint(glfw.ContextVersionMinor, version[1])
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !attrs.Alpha {
		glfw.WindowHint(glfw.AlphaBits, 0)
	}

	win, err := glfw.CreateWindow(w.conf.Width, w.conf.Height, w.conf.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s window: %w", tier, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	device, err := gles.NewGL(win.GetFramebufferSize)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	slog.Debug("desktop context ready", "tier", tier, "version", device.Version())

	win.SetKeyCallback(onKey)
	win.SetRefreshCallback(func(*glfw.Window) {
		if w.onRefresh != nil {
			w.onRefresh()
		}
	})
	w.win = win
	w.device = device
	return device, nil
}

func onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && (key == glfw.KeyEscape || key == glfw.KeyQ) {
		w.SetShouldClose(true)
	}
}

// OnRefresh registers fn for window damage (expose) notifications.
func (w *Window) OnRefresh(fn func()) {
	w.onRefresh = fn
}

func (w *Window) ClientSize() (int, int) {
	if w.win == nil {
		return w.conf.Width, w.conf.Height
	}
	return w.win.GetFramebufferSize()
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// SetSize records the backing size. GLFW resizes the default framebuffer
// with the window, so nothing else has to change.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
}

func (w *Window) RequestFrame(fn func()) {
	w.pending = fn
}

func (w *Window) Present() {
	w.presented = true
}

func (w *Window) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// Run pumps window events and due frame callbacks until the window is closed
// or ctx is cancelled. Frames that drew are swapped, idle ticks wait for
// events up to one refresh interval.
func (w *Window) Run(ctx context.Context) {
	if w.win == nil {
		return
	}
	for !w.win.ShouldClose() {
		if ctx.Err() != nil {
			return
		}
		fn := w.pending
		w.pending = nil
		if fn != nil {
			fn()
		}
		if w.presented {
			w.presented = false
			w.win.SwapBuffers()
			glfw.PollEvents()
			continue
		}
		glfw.WaitEventsTimeout(frameInterval.Seconds())
	}
}

func (w *Window) Close() {
	if w.device != nil {
		w.device.Release()
		w.device = nil
	}
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}
