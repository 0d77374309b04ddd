// Package sheet renders a catalog's images as a captioned contact sheet.
//
// Each image gets a square cell holding a nearest-neighbour thumbnail with
// the image filename underneath. Images that cannot be loaded are drawn as
// magenta squares so that broken inventory entries stand out.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/internal/sprite"
	"github.com/gogpu/wardrobe/internal/workpool"
)

// Layout defaults.
const (
	DefaultThumbSize = 128
	DefaultColumns   = 6

	captionSize   = 11
	captionHeight = 16
	gap           = 4
	ellipsis      = ".."
)

// ErrNoArticles is returned when there is nothing to draw.
var ErrNoArticles = errors.New("sheet: no articles")

var (
	placeholder = color.RGBA{R: 255, B: 255, A: 255}
	captionInk  = image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255})
)

// Options configures Render. Zero fields take the package defaults.
type Options struct {
	// ThumbSize is the edge length of a thumbnail cell in pixels.
	ThumbSize int

	// Columns is the number of cells per row.
	Columns int

	// Workers is the number of goroutines decoding and scaling thumbnails.
	// Zero or negative uses GOMAXPROCS.
	Workers int

	// Load decodes an image path and must be safe for concurrent use.
	// Defaults to sprite.Load.
	Load func(path string) (*sprite.Image, error)

	// Logger receives a warning for every image that fails to load.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.ThumbSize <= 0 {
		o.ThumbSize = DefaultThumbSize
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Load == nil {
		o.Load = sprite.Load
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Entry is one cell of a sheet.
type Entry struct {
	Name string
	Path string
}

// Entries returns one entry per distinct image path in articles, in first
// appearance order.
func Entries(articles []catalog.Article) []Entry {
	seen := make(map[string]bool, len(articles))
	out := make([]Entry, 0, len(articles))
	for _, a := range articles {
		if seen[a.Path] {
			continue
		}
		seen[a.Path] = true
		out = append(out, Entry{Name: a.Image, Path: a.Path})
	}
	return out
}

// Size returns the pixel size of a sheet holding n cells.
func Size(n int, opts Options) image.Point {
	opts = opts.withDefaults()
	cols := min(n, opts.Columns)
	rows := (n + opts.Columns - 1) / opts.Columns
	cellW, cellH := opts.ThumbSize+gap, opts.ThumbSize+captionHeight+gap
	return image.Pt(cols*cellW+gap, rows*cellH+gap)
}

// Render draws the distinct images of articles into a grid.
// Thumbnails are prepared in parallel. Load failures are logged and replaced
// by a placeholder; they do not fail the sheet.
func Render(articles []catalog.Article, opts Options) (*sprite.Image, error) {
	entries := Entries(articles)
	if len(entries) == 0 {
		return nil, ErrNoArticles
	}
	opts = opts.withDefaults()

	size := Size(len(entries), opts)
	out, err := sprite.New(size.X, size.Y)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}

	face, err := captionFace()
	if err != nil {
		return nil, fmt.Errorf("sheet: caption font: %w", err)
	}
	defer func() { _ = face.Close() }()

	thumbs := make([]*sprite.Image, len(entries))
	loadErrs := make([]error, len(entries))
	tasks := make([]func(), len(entries))
	for i, e := range entries {
		tasks[i] = func() { thumbs[i], loadErrs[i] = thumbnail(opts.Load, e.Path, opts.ThumbSize) }
	}
	pool := workpool.New(min(len(tasks), workers(opts.Workers)))
	pool.Run(tasks)
	pool.Close()

	for i, e := range entries {
		cell := image.Pt(
			gap+(i%opts.Columns)*(opts.ThumbSize+gap),
			gap+(i/opts.Columns)*(opts.ThumbSize+captionHeight+gap),
		)

		if thumb := thumbs[i]; thumb != nil {
			sprite.DrawOver(out, thumb,
				cell.X+(opts.ThumbSize-thumb.Width())/2,
				cell.Y+(opts.ThumbSize-thumb.Height())/2)
		} else {
			opts.Logger.Warn("sheet: failed to load image", "image", e.Name, "path", e.Path, "err", loadErrs[i])
			fill(out, image.Rectangle{Min: cell, Max: cell.Add(image.Pt(opts.ThumbSize, opts.ThumbSize))}, placeholder)
		}

		drawCaption(out, face, e.Name, cell.Add(image.Pt(0, opts.ThumbSize)), opts.ThumbSize)
	}
	return out, nil
}

func workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Fit returns the size of a w×h image scaled to fit inside a size×size box
// with its aspect ratio kept. Images smaller than the box grow by whole
// multiples only, so pixel art keeps square pixels.
func Fit(w, h, size int) image.Point {
	if w <= size && h <= size {
		k := max(1, min(size/w, size/h))
		return image.Pt(w*k, h*k)
	}
	if w >= h {
		return image.Pt(size, max(1, h*size/w))
	}
	return image.Pt(max(1, w*size/h), size)
}

// thumbnail loads path and scales it to fit a size×size cell.
func thumbnail(load func(string) (*sprite.Image, error), path string, size int) (*sprite.Image, error) {
	img, err := load(path)
	if err != nil {
		return nil, err
	}
	fit := Fit(img.Width(), img.Height(), size)
	return sprite.Resize(img, fit.X, fit.Y)
}

func fill(dst *sprite.Image, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

func drawCaption(dst *sprite.Image, face font.Face, name string, at image.Point, width int) {
	label := truncate(face, name, width)
	adv := font.MeasureString(face, label).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst.RGBA(),
		Src:  captionInk,
		Face: face,
		Dot:  fixed.P(at.X+(width-adv)/2, at.Y+2+ascent),
	}
	d.DrawString(label)
}

// truncate shortens s until it fits in width pixels, marking the cut.
func truncate(face font.Face, s string, width int) string {
	if font.MeasureString(face, s).Ceil() <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		t := string(r) + ellipsis
		if font.MeasureString(face, t).Ceil() <= width {
			return t
		}
	}
	return ""
}

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// captionFace returns a new face; faces hold glyph buffers and are not safe
// for concurrent use.
func captionFace() (font.Face, error) {
	f, err := captionFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
