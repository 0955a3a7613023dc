package gfx

import (
	"context"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
)

// Loop redraws on display refresh ticks when the surface was resized or a
// redraw was requested. It starts dirty so the first tick always draws.
type Loop struct {
	surface   platform.Surface
	dev       gles.Device
	scheduler platform.Scheduler
	render    func() error

	dirty   bool
	halted  bool
	err     error
	ctx     context.Context
	tickFn  func()
	started bool
}

func NewLoop(surface platform.Surface, dev gles.Device, scheduler platform.Scheduler, render func() error) *Loop {
	l := &Loop{
		surface:   surface,
		dev:       dev,
		scheduler: scheduler,
		render:    render,
		dirty:     true,
	}
	l.tickFn = l.run
	return l
}

// Dirty reports whether a redraw is pending.
func (l *Loop) Dirty() bool { return l.dirty }

// Err returns the render error that halted the loop, if any.
func (l *Loop) Err() error { return l.err }

func (l *Loop) RequestRedraw() {
	l.dirty = true
}

// Start schedules the first tick. Ticks keep rescheduling themselves until
// ctx is done or a frame fails.
func (l *Loop) Start(ctx context.Context) {
	if l.started {
		return
	}
	l.started = true
	l.ctx = ctx
	l.scheduler.RequestFrame(l.tickFn)
}

func (l *Loop) run() {
	if l.ctx.Err() != nil {
		return
	}
	if _, err := l.Tick(); err != nil {
		l.halted = true
		l.err = err
		Logger().Error("render loop halted", "error", err)
		return
	}
	l.scheduler.RequestFrame(l.tickFn)
}

// Tick runs one iteration without rescheduling and reports whether a frame
// was drawn.
func (l *Loop) Tick() (bool, error) {
	if l.halted {
		return false, l.err
	}
	resized := l.resize()
	if !resized && !l.dirty {
		return false, nil
	}
	l.dirty = false
	if err := l.render(); err != nil {
		return false, err
	}
	if p, ok := l.surface.(platform.Presenter); ok {
		p.Present()
	}
	return true, nil
}

// resize matches the backing store to the displayed size and updates the
// viewport when they differ.
func (l *Loop) resize() bool {
	width, height := l.surface.ClientSize()
	curWidth, curHeight := l.surface.Size()
	if width == curWidth && height == curHeight {
		return false
	}
	Logger().Debug("surface resized", "width", width, "height", height)
	l.surface.SetSize(width, height)
	bufWidth, bufHeight := l.dev.DrawingBufferSize()
	l.dev.Viewport(0, 0, bufWidth, bufHeight)
	return true
}
