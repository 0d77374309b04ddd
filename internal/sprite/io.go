package sprite

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	// Registered decoders. Character art ships as GIF; PNG, JPEG and the
	// x/image formats are accepted for user-supplied articles.
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path, auto-detecting the format.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sprite: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage converts any image.Image into a premultiplied sprite whose
// origin is (0, 0).
func FromStdImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	m, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: RGBA with matching stride.
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == m.width*4 && rgba.Rect.Min == (image.Point{}) {
		copy(m.data, rgba.Pix)
		return m, nil
	}

	dst := m.RGBA()
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return m, nil
}

// EncodePNG writes the image as PNG to w. Transparency is preserved.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m.ToStdImage()); err != nil {
		return fmt.Errorf("sprite: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the image as a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("sprite: create file: %w", err)
	}

	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
