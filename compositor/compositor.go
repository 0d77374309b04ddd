// Package compositor stacks the selected articles of one document into a
// single raster image.
//
// Each layer holds at most one active article. Rendering blends the active
// images back to front following catalog.LayerOrder with plain source-over
// compositing and no resampling, so pixel art comes out exactly as drawn.
//
// A Compositor belongs to one document and is not safe for concurrent use.
package compositor

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"io"
	"slices"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/internal/sprite"
)

// Rendering defaults.
const (
	// DefaultPadding is the transparent margin added around the composite.
	DefaultPadding = 10

	// EmptyCanvasSize is the width and height of the canvas rendered when
	// nothing is selected.
	EmptyCanvasSize = 300
)

// Image is a premultiplied RGBA pixel buffer holding a decoded article or a
// rendered composite.
type Image = sprite.Image

// ErrDecode is returned by Select when the article image cannot be loaded.
var ErrDecode = errors.New("compositor: cannot load article image")

// placed is an active article together with its decoded image.
type placed struct {
	article catalog.Article
	img     *Image
}

func (p placed) rect() image.Rectangle {
	return image.Rect(p.article.X, p.article.Y, p.article.X+p.img.Width(), p.article.Y+p.img.Height())
}

// Compositor owns the per-layer selection of one document.
type Compositor struct {
	active map[string]placed
	opts   options
}

// New creates a compositor with an empty selection.
func New(opts ...Option) *Compositor {
	return &Compositor{
		active: make(map[string]placed),
		opts:   newOptions(opts),
	}
}

// Select makes a the active article of its layer.
//
// The layer's previous article is removed before the new image is loaded.
// When loading fails the error wraps ErrDecode and the layer is left empty;
// the previous selection is not restored.
func (c *Compositor) Select(a catalog.Article) error {
	delete(c.active, a.Layer)

	img, err := c.opts.loader.Load(a.Path)
	if err != nil {
		c.opts.logger.Warn("compositor: failed to load image", "article", a.ID, "path", a.Path, "err", err)
		return fmt.Errorf("%w: article %q (%s): %w", ErrDecode, a.ID, a.Path, err)
	}

	c.active[a.Layer] = placed{article: a, img: img}
	c.opts.logger.Debug("compositor: selected", "article", a.ID, "layer", a.Layer)
	return nil
}

// Deselect clears a's layer if the active article there has a's ID.
// It is a no-op otherwise, so stale references after a reload are harmless.
func (c *Compositor) Deselect(a catalog.Article) {
	if p, ok := c.active[a.Layer]; ok && p.article.ID == a.ID {
		delete(c.active, a.Layer)
		c.opts.logger.Debug("compositor: deselected", "article", a.ID, "layer", a.Layer)
	}
}

// IsActive reports whether a's layer currently shows an article with a's ID.
func (c *Compositor) IsActive(a catalog.Article) bool {
	p, ok := c.active[a.Layer]
	return ok && p.article.ID == a.ID
}

// ActiveOn returns the active article of layer, if any.
func (c *Compositor) ActiveOn(layer string) (catalog.Article, bool) {
	p, ok := c.active[layer]
	return p.article, ok
}

// Clear empties the selection.
func (c *Compositor) Clear() {
	clear(c.active)
}

// Len returns the number of active layers.
func (c *Compositor) Len() int { return len(c.active) }

// Active returns the active articles back to front: ascending z, then layer
// name for layers sharing a z index.
func (c *Compositor) Active() []catalog.Article {
	stack := c.stack()
	out := make([]catalog.Article, len(stack))
	for i, p := range stack {
		out[i] = p.article
	}
	return out
}

func (c *Compositor) stack() []placed {
	out := make([]placed, 0, len(c.active))
	for _, p := range c.active {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b placed) int {
		return cmp.Or(
			cmp.Compare(catalog.LayerZ(a.article.Layer), catalog.LayerZ(b.article.Layer)),
			cmp.Compare(a.article.Layer, b.article.Layer),
		)
	})
	return out
}

// Bounds returns the union of the active images' rectangles in composite
// coordinates, or an empty rectangle when nothing is selected.
func (c *Compositor) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, p := range c.active {
		r = r.Union(p.rect())
	}
	return r
}

// Render composites the selection with DefaultPadding.
func (c *Compositor) Render() (*Image, error) {
	return c.RenderPadded(DefaultPadding)
}

// RenderPadded composites the selection onto a transparent canvas covering
// the selection's bounds grown by padding on every side. With nothing
// selected the canvas is EmptyCanvasSize square and unpadded. Negative
// padding is treated as zero.
func (c *Compositor) RenderPadded(padding int) (*Image, error) {
	padding = max(0, padding)

	area := c.Bounds()
	if area.Empty() {
		area = image.Rect(0, 0, EmptyCanvasSize, EmptyCanvasSize)
	} else {
		area = area.Inset(-padding)
	}

	canvas, err := sprite.New(area.Dx(), area.Dy())
	if err != nil {
		return nil, fmt.Errorf("compositor: allocate canvas: %w", err)
	}
	for _, p := range c.stack() {
		sprite.DrawOver(canvas, p.img, p.article.X-area.Min.X, p.article.Y-area.Min.Y)
	}
	return canvas, nil
}

// Export renders the selection with DefaultPadding and writes it as a PNG
// file.
func (c *Compositor) Export(path string) error {
	return c.ExportPadded(path, DefaultPadding)
}

// ExportPadded renders the selection with the given padding and writes it as
// a PNG file.
func (c *Compositor) ExportPadded(path string, padding int) error {
	canvas, err := c.RenderPadded(padding)
	if err != nil {
		return err
	}
	if err := canvas.SavePNG(path); err != nil {
		return fmt.Errorf("compositor: export: %w", err)
	}
	c.opts.logger.Info("compositor: exported", "path", path,
		"width", canvas.Width(), "height", canvas.Height(), "layers", len(c.active))
	return nil
}

// EncodePNG renders the selection with DefaultPadding and writes it as PNG
// to w.
func (c *Compositor) EncodePNG(w io.Writer) error {
	return c.EncodePNGPadded(w, DefaultPadding)
}

// EncodePNGPadded renders the selection with the given padding and writes it
// as PNG to w.
func (c *Compositor) EncodePNGPadded(w io.Writer, padding int) error {
	canvas, err := c.RenderPadded(padding)
	if err != nil {
		return err
	}
	return canvas.EncodePNG(w)
}
