package gfx

import (
	"errors"
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
)

// Context is a live rendering context bound to its canvas. It owns every GPU
// object created through Device.
type Context struct {
	Device gles.Device
	Canvas platform.Canvas
	Tier   string
}

// NewContext asks canvas for a context, trying tiers in order, and sizes the
// backing store to the displayed size. When every tier fails the error
// matches ErrContextUnavailable and wraps each tier's failure.
func NewContext(canvas platform.Canvas, tiers []string, attrs gles.ContextAttributes) (*Context, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no context tiers configured", ErrContextUnavailable)
	}
	errs := []error{ErrContextUnavailable}
	for _, tier := range tiers {
		dev, err := canvas.Context(tier, attrs)
		if err != nil {
			Logger().Debug("context tier unavailable", "tier", tier, "error", err)
			errs = append(errs, err)
			continue
		}
		if dev == nil {
			errs = append(errs, fmt.Errorf("%s: no device", tier))
			continue
		}
		canvas.SetSize(canvas.ClientSize())
		Logger().Info("rendering context acquired", "tier", tier)
		return &Context{Device: dev, Canvas: canvas, Tier: tier}, nil
	}
	return nil, errors.Join(errs...)
}
