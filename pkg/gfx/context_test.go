package gfx

import (
	"errors"
	"testing"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/tdewolff/test"
)

func TestNewContextFirstTier(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	rc, err := NewContext(canvas, []string{"webgl", "experimental-webgl"}, gles.ContextAttributes{})
	test.Error(t, err)

	test.String(t, rc.Tier, "webgl")
	test.T(t, canvas.asked, []string{"webgl"})
	w, h := canvas.Size()
	test.T(t, w, 800)
	test.T(t, h, 600)
	w, h = rc.Device.DrawingBufferSize()
	test.T(t, w, 800)
	test.T(t, h, 600)
}

func TestNewContextFallback(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	canvas.refuse = map[string]bool{"webgl": true}

	rc, err := NewContext(canvas, []string{"webgl", "experimental-webgl"}, gles.ContextAttributes{})
	test.Error(t, err)
	test.String(t, rc.Tier, "experimental-webgl")
	test.T(t, canvas.asked, []string{"webgl", "experimental-webgl"})
}

func TestNewContextUnavailable(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	canvas.refuse = map[string]bool{"webgl": true, "experimental-webgl": true}

	_, err := NewContext(canvas, []string{"webgl", "experimental-webgl"}, gles.ContextAttributes{})
	test.That(t, errors.Is(err, ErrContextUnavailable))
	w, h := canvas.Size()
	test.T(t, w, 300)
	test.T(t, h, 150)

	_, err = NewContext(canvas, nil, gles.ContextAttributes{})
	test.That(t, errors.Is(err, ErrContextUnavailable))
}
