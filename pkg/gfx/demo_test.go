package gfx

import (
	"context"
	"errors"
	"testing"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/tdewolff/test"
)

func demoOptions(canvas *fakeCanvas, scheduler *manualScheduler, notifier *recordingNotifier) Options {
	return Options{
		Canvas:           canvas,
		Document:         shaderPage(),
		Scheduler:        scheduler,
		Notifier:         notifier,
		Tiers:            []string{"webgl", "experimental-webgl"},
		VertexShaderID:   "shader-vs",
		FragmentShaderID: "shader-fs",
		Scene:            DefaultScene(),
	}
}

func TestStart(t *testing.T) {
	canvas := newFakeCanvas(640, 480)
	scheduler := &manualScheduler{}
	notifier := &recordingNotifier{}

	d, err := Start(context.Background(), demoOptions(canvas, scheduler, notifier))
	test.Error(t, err)
	test.T(t, len(notifier.messages), 0)
	test.String(t, d.Context().Tier, "webgl")

	dev := canvas.dev
	test.T(t, dev.ClearRGBA, [4]float32{0, 0, 0, 1})
	test.T(t, dev.Viewports, [][4]int{{0, 0, 640, 480}})
	test.T(t, len(dev.Draws), 0)

	scheduler.step()
	test.T(t, len(dev.Draws), 2)
	test.T(t, canvas.presents, 1)

	scheduler.step()
	test.T(t, len(dev.Draws), 2)

	d.RequestRedraw()
	scheduler.step()
	test.T(t, len(dev.Draws), 4)

	test.Error(t, d.DrawScene())
	test.T(t, len(dev.Draws), 6)
	test.T(t, canvas.presents, 3)
	test.T(t, d.Renderer().StackDepth(), 0)
	test.That(t, !d.Loop().Dirty())

	test.T(t, dev.LiveObjects(), 5)
	d.Close()
	test.T(t, dev.LiveObjects(), 0)
}

func TestStartWithoutContext(t *testing.T) {
	canvas := newFakeCanvas(640, 480)
	canvas.refuse = map[string]bool{"webgl": true, "experimental-webgl": true}
	scheduler := &manualScheduler{}
	notifier := &recordingNotifier{}

	_, err := Start(context.Background(), demoOptions(canvas, scheduler, notifier))
	test.That(t, errors.Is(err, ErrContextUnavailable))
	test.T(t, notifier.messages, []string{ContextUnavailableMessage})
	test.T(t, len(scheduler.pending), 0)
	test.T(t, canvas.dev.Count("CreateShader"), 0)
}

func TestStartShaderFailure(t *testing.T) {
	canvas := newFakeCanvas(640, 480)
	canvas.dev.CompileLog = map[gles.ShaderKind]string{gles.VertexShader: "syntax error"}
	scheduler := &manualScheduler{}
	notifier := &recordingNotifier{}

	_, err := Start(context.Background(), demoOptions(canvas, scheduler, notifier))
	test.That(t, errors.Is(err, ErrShaderCompile))
	test.T(t, len(notifier.messages), 0)
	test.T(t, len(scheduler.pending), 0)
	test.T(t, canvas.dev.Count("CreateBuffer"), 0)
}
