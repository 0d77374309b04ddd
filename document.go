package wardrobe

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/compositor"
	"github.com/gogpu/wardrobe/project"
	"github.com/gogpu/wardrobe/randomize"
	"github.com/gogpu/wardrobe/view"
)

// Document errors.
var (
	// ErrNoCatalog is returned by operations that need a loaded catalog.
	ErrNoCatalog = errors.New("wardrobe: document has no catalog")

	// ErrUnknownArticle is returned by SelectID for ids missing from the
	// catalog.
	ErrUnknownArticle = errors.New("wardrobe: unknown article")

	// ErrNothingToRandomize is returned when a random draw comes back empty.
	// The selection is left as it was.
	ErrNothingToRandomize = errors.New("wardrobe: nothing to randomize")
)

// Document is one character being dressed: a catalog, the selection drawn
// from it, and the zoom it is viewed at.
//
// A Document is not safe for concurrent use. Documents share nothing
// mutable, so different documents may be used from different goroutines.
type Document struct {
	id          uuid.UUID
	lib         *Library
	cat         *catalog.Catalog
	comp        *compositor.Compositor
	zoom        view.Zoom
	projectPath string
}

func newDocument(l *Library) *Document {
	return &Document{
		id:   uuid.New(),
		lib:  l,
		comp: l.newCompositor(),
		zoom: l.opts.zoom,
	}
}

// ID returns the identifier the document is registered under in a
// Workspace.
func (d *Document) ID() uuid.UUID { return d.id }

// HasCatalog reports whether a catalog is loaded.
func (d *Document) HasCatalog() bool { return d.cat != nil }

// Catalog returns the loaded catalog, or nil.
func (d *Document) Catalog() *catalog.Catalog { return d.cat }

// Select makes a the active article of its layer. See compositor.Select.
func (d *Document) Select(a catalog.Article) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	return d.comp.Select(a)
}

// SelectID selects the first catalog article with the given id.
func (d *Document) SelectID(id string) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	a, ok := d.cat.FindByID(id)
	if !ok {
		return fmt.Errorf("%w: %q in %s", ErrUnknownArticle, id, d.cat.Name)
	}
	return d.comp.Select(a)
}

// Deselect removes a if it is the active article of its layer.
func (d *Document) Deselect(a catalog.Article) { d.comp.Deselect(a) }

// IsActive reports whether a is the active article of its layer.
func (d *Document) IsActive(a catalog.Article) bool { return d.comp.IsActive(a) }

// Clear removes every selection.
func (d *Document) Clear() { d.comp.Clear() }

// Active returns the selected articles back to front.
func (d *Document) Active() []catalog.Article { return d.comp.Active() }

// Render composites the selection with the library padding.
func (d *Document) Render() (*compositor.Image, error) {
	return d.comp.RenderPadded(d.lib.opts.padding)
}

// RenderPadded composites the selection with the given padding.
func (d *Document) RenderPadded(padding int) (*compositor.Image, error) {
	return d.comp.RenderPadded(padding)
}

// Export renders the document with the library padding and writes it to
// path as PNG.
func (d *Document) Export(path string) error {
	return d.comp.ExportPadded(path, d.lib.opts.padding)
}

// EncodePNG renders the document with the library padding and writes it as
// PNG to w.
func (d *Document) EncodePNG(w io.Writer) error {
	return d.comp.EncodePNGPadded(w, d.lib.opts.padding)
}

// Reload loads another inventory of the same character and clears the
// selection. An empty name selects the library default. With WithDefaultBody
// the first body article of the new catalog is selected again.
func (d *Document) Reload(inventory string) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	cat, err := d.lib.Catalog(d.cat.Name, inventory)
	if err != nil {
		return err
	}
	d.cat = cat
	d.comp.Clear()
	return d.selectDefaultBody()
}

// selectDefaultBody selects the first "body" article when the library asks
// for one. Catalogs without a body are left bare.
func (d *Document) selectDefaultBody() error {
	if !d.lib.opts.defaultBody {
		return nil
	}
	body := d.cat.ArticlesByCategory("body")
	if len(body) == 0 {
		return nil
	}
	return d.comp.Select(body[0])
}

// Project returns a snapshot of the document as a project file.
func (d *Document) Project() (*project.File, error) {
	if d.cat == nil {
		return nil, ErrNoCatalog
	}
	return project.New(d.cat.Name, d.cat.InventoryFile, d.comp.Active()), nil
}

// SaveProject writes the document to path and remembers path as the
// document's project file.
func (d *Document) SaveProject(path string) error {
	f, err := d.Project()
	if err != nil {
		return err
	}
	if err := f.SaveFile(path); err != nil {
		return err
	}
	d.projectPath = path
	d.lib.opts.logger.Info("wardrobe: project saved", "path", path, "articles", len(f.ActiveArticles))
	return nil
}

// ProjectPath returns the file the document was last opened from or saved
// to, or "".
func (d *Document) ProjectPath() string { return d.projectPath }

// Randomize clears the selection and dresses the character with one random
// article from every category. A nil rng uses the global source. An empty
// draw returns ErrNothingToRandomize and keeps the current selection.
func (d *Document) Randomize(rng *rand.Rand) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	outfit := randomize.Outfit(d.cat, rng)
	if len(outfit) == 0 {
		return d.nothingDrawn()
	}
	d.comp.Clear()
	return d.apply(outfit)
}

// RandomizeSubset replaces the selection on the named categories only.
func (d *Document) RandomizeSubset(categories []string, rng *rand.Rand) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	picked := randomize.Subset(d.cat, categories, rng)
	if len(picked) == 0 {
		return d.nothingDrawn()
	}
	return d.apply(picked)
}

// RandomizeClothes redraws every category except randomize.IdentityCategories.
func (d *Document) RandomizeClothes(rng *rand.Rand) error {
	if d.cat == nil {
		return ErrNoCatalog
	}
	picked := randomize.Clothes(d.cat, rng)
	if len(picked) == 0 {
		return d.nothingDrawn()
	}
	return d.apply(picked)
}

func (d *Document) nothingDrawn() error {
	d.lib.opts.logger.Warn("wardrobe: nothing to randomize",
		"character", d.cat.Name, "inventory", d.cat.InventoryFile)
	return ErrNothingToRandomize
}

func (d *Document) apply(articles []catalog.Article) error {
	var errs []error
	for _, a := range articles {
		if err := d.comp.Select(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Zoom returns the current display zoom.
func (d *Document) Zoom() view.Zoom { return d.zoom }

// ZoomIn increases the zoom by one step.
func (d *Document) ZoomIn() { d.zoom = d.zoom.In() }

// ZoomOut decreases the zoom by one step. The zoom never reaches zero.
func (d *Document) ZoomOut() { d.zoom = d.zoom.Out() }

// SetZoom sets the zoom factor.
func (d *Document) SetZoom(scale float64) error {
	z, err := d.zoom.With(scale)
	if err != nil {
		return err
	}
	d.zoom = z
	return nil
}

// Preview renders the document and upscales it by the current zoom.
// Exported images are never zoomed.
func (d *Document) Preview() (*compositor.Image, error) {
	img, err := d.Render()
	if err != nil {
		return nil, err
	}
	return d.zoom.Preview(img)
}
