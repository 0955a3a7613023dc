package gfx

import (
	"context"
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
)

// ContextUnavailableMessage is shown to the user when no context tier works.
const ContextUnavailableMessage = "Could not initialise WebGL, sorry :-( "

type Options struct {
	Canvas    platform.Canvas
	Document  platform.Document
	Scheduler platform.Scheduler
	Notifier  platform.Notifier

	Tiers            []string
	Attributes       gles.ContextAttributes
	VertexShaderID   string
	FragmentShaderID string
	Scene            SceneConfig
}

// Demo owns the context, the program and the geometry for the process
// lifetime, and the loop that redraws them.
type Demo struct {
	context  *Context
	program  *Program
	geometry *Geometry
	renderer *FrameRenderer
	loop     *Loop
}

// Start initializes the context, compiles the program, uploads the meshes and
// schedules the first frame. Any failure halts before rendering; a missing
// context is also reported through opts.Notifier.
func Start(ctx context.Context, opts Options) (*Demo, error) {
	rc, err := NewContext(opts.Canvas, opts.Tiers, opts.Attributes)
	if err != nil {
		Logger().Error("rendering context init failed", "error", err)
		if opts.Notifier != nil {
			opts.Notifier.Notify(ContextUnavailableMessage)
		}
		return nil, err
	}
	dev := rc.Device

	prog, err := CompileProgram(dev, opts.Document, opts.VertexShaderID, opts.FragmentShaderID)
	if err != nil {
		Logger().Error("shader setup failed", "error", err)
		return nil, fmt.Errorf("shader setup: %w", err)
	}
	geom, err := UploadGeometry(dev)
	if err != nil {
		prog.Release(dev)
		Logger().Error("geometry upload failed", "error", err)
		return nil, fmt.Errorf("geometry upload: %w", err)
	}

	c := opts.Scene.ClearColor
	dev.ClearColor(c[0], c[1], c[2], c[3])
	width, height := dev.DrawingBufferSize()
	dev.Viewport(0, 0, width, height)

	d := &Demo{
		context:  rc,
		program:  prog,
		geometry: geom,
		renderer: NewFrameRenderer(dev, prog, geom, opts.Scene),
	}
	d.loop = NewLoop(opts.Canvas, dev, opts.Scheduler, d.renderer.Render)
	d.loop.Start(ctx)
	return d, nil
}

func (d *Demo) Context() *Context         { return d.context }
func (d *Demo) Renderer() *FrameRenderer { return d.renderer }
func (d *Demo) Loop() *Loop              { return d.loop }

// DrawScene renders a frame right away, outside the refresh loop.
func (d *Demo) DrawScene() error {
	if err := d.renderer.Render(); err != nil {
		return err
	}
	if p, ok := d.context.Canvas.(platform.Presenter); ok {
		p.Present()
	}
	return nil
}

// RequestRedraw makes the next tick draw.
func (d *Demo) RequestRedraw() {
	d.loop.RequestRedraw()
}

// Close releases the buffers and the program. The context itself goes away
// with its canvas.
func (d *Demo) Close() {
	dev := d.context.Device
	d.geometry.Release(dev)
	d.program.Release(dev)
}
