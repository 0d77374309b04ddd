// Package sprite provides the pixel buffer used for article images and
// rendered composites.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, tightly packed.
// This matches image.RGBA so buffers convert to the standard library without
// copying channel order.
package sprite

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for sprite operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("sprite: invalid dimensions")

	// ErrEmptyData is returned when encoded image data is empty.
	ErrEmptyData = errors.New("sprite: empty data")
)

// Image is a premultiplied RGBA pixel buffer.
//
// Image is not safe for concurrent mutation.
type Image struct {
	data   []byte
	width  int
	height int
}

// New creates a fully transparent image.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		data:   make([]byte, width*height*4),
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Size returns the image dimensions as a point.
func (m *Image) Size() image.Point { return image.Pt(m.width, m.height) }

// Data returns the raw premultiplied RGBA bytes.
func (m *Image) Data() []byte { return m.data }

// Row returns the bytes of row y.
func (m *Image) Row(y int) []byte {
	start := y * m.width * 4
	return m.data[start : start+m.width*4]
}

// RGBAAt returns the premultiplied pixel at (x, y).
// Out-of-bounds coordinates return transparent black.
func (m *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return color.RGBA{}
	}
	i := (y*m.width + x) * 4
	return color.RGBA{R: m.data[i], G: m.data[i+1], B: m.data[i+2], A: m.data[i+3]}
}

// SetRGBA sets the premultiplied pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (m *Image) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * 4
	m.data[i], m.data[i+1], m.data[i+2], m.data[i+3] = c.R, c.G, c.B, c.A
}

// IsTransparent reports whether every pixel has zero alpha.
func (m *Image) IsTransparent() bool {
	for i := 3; i < len(m.data); i += 4 {
		if m.data[i] != 0 {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color { return m.RGBAAt(x, y) }

// RGBA returns an *image.RGBA that shares m's pixels. Drawing into it
// draws into m.
func (m *Image) RGBA() *image.RGBA {
	return &image.RGBA{Pix: m.data, Stride: m.width * 4, Rect: m.Bounds()}
}

// ToStdImage returns a copy of the buffer as *image.RGBA.
func (m *Image) ToStdImage() *image.RGBA {
	rgba := image.NewRGBA(m.Bounds())
	copy(rgba.Pix, m.data)
	return rgba
}
