// Package view holds presentation state that never reaches exported images:
// the display zoom of a document and the upscaled preview it produces.
package view

import (
	"errors"
	"fmt"

	"github.com/gogpu/wardrobe/internal/sprite"
)

// Zoom defaults.
const (
	DefaultZoom = 4.0
	DefaultStep = 0.5
)

// ErrInvalidZoom is returned for non-positive zoom factors or steps.
var ErrInvalidZoom = errors.New("view: zoom must be positive")

// Zoom is a display scale factor adjusted in fixed steps.
// The zero value is not usable; call NewZoom.
type Zoom struct {
	scale float64
	step  float64
}

// NewZoom returns a zoom at DefaultZoom with DefaultStep increments.
func NewZoom() Zoom {
	return Zoom{scale: DefaultZoom, step: DefaultStep}
}

// NewZoomWith returns a zoom at scale with the given step.
func NewZoomWith(scale, step float64) (Zoom, error) {
	if scale <= 0 || step <= 0 {
		return Zoom{}, fmt.Errorf("%w: scale %g, step %g", ErrInvalidZoom, scale, step)
	}
	return Zoom{scale: scale, step: step}, nil
}

// Scale returns the current factor.
func (z Zoom) Scale() float64 { return z.scale }

// Step returns the increment used by In and Out.
func (z Zoom) Step() float64 { return z.step }

// In returns the zoom one step larger.
func (z Zoom) In() Zoom {
	z.scale += z.step
	return z
}

// Out returns the zoom one step smaller. The factor never reaches zero: when
// a step would make it non-positive, z is returned unchanged.
func (z Zoom) Out() Zoom {
	if z.scale-z.step <= 0 {
		return z
	}
	z.scale -= z.step
	return z
}

// With returns the zoom set to scale.
func (z Zoom) With(scale float64) (Zoom, error) {
	if scale <= 0 {
		return z, fmt.Errorf("%w: %g", ErrInvalidZoom, scale)
	}
	z.scale = scale
	return z, nil
}

// Preview returns img upscaled by the zoom factor with nearest-neighbour
// sampling. img itself is not modified.
func (z Zoom) Preview(img *sprite.Image) (*sprite.Image, error) {
	return sprite.Scale(img, z.scale)
}
