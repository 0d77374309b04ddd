package wardrobe

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/compositor"
	"github.com/gogpu/wardrobe/project"
)

// ErrRootNotFound is returned when the resource root does not exist.
var ErrRootNotFound = catalog.ErrRootNotFound

// Library is a resource root holding one directory per character.
// It opens documents and loads catalogs; it keeps no per-document state.
type Library struct {
	root string
	opts options
}

// NewLibrary checks that root is an existing directory and returns a
// library rooted there.
func NewLibrary(root string, opts ...Option) (*Library, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("wardrobe: %w: %s", ErrRootNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("wardrobe: %w: %s is not a directory", ErrRootNotFound, root)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return &Library{root: root, opts: o}, nil
}

// Root returns the resource root directory.
func (l *Library) Root() string { return l.root }

// Catalog loads a character's inventory. An empty inventory name selects the
// library default.
func (l *Library) Catalog(character, inventory string) (*catalog.Catalog, error) {
	if inventory == "" {
		inventory = l.opts.inventory
	}
	return catalog.Load(l.root, character, inventory, catalog.WithLogger(l.opts.logger))
}

// NewDocument returns a document with no catalog and an empty selection.
func (l *Library) NewDocument() *Document {
	return newDocument(l)
}

// Open loads a character's inventory into a new document.
//
// With WithDefaultBody the first "body" article is selected. A body image
// that fails to decode is reported in the error, but the document is still
// returned.
func (l *Library) Open(character, inventory string) (*Document, error) {
	cat, err := l.Catalog(character, inventory)
	if err != nil {
		return nil, err
	}
	d := newDocument(l)
	d.cat = cat
	return d, d.selectDefaultBody()
}

// OpenProject restores a project file into a new document.
//
// The project's catalog is loaded, the selection cleared and every saved
// article selected in saved order. Saved ids the catalog no longer has are
// skipped with a warning. Articles whose images fail to decode are joined
// into the returned error; the document is returned alongside it.
func (l *Library) OpenProject(path string) (*Document, error) {
	f, err := project.LoadFile(path)
	if err != nil {
		return nil, err
	}

	r, err := project.Restore(f, l.Catalog, l.opts.logger)
	if err != nil {
		return nil, err
	}

	d := newDocument(l)
	d.cat = r.Catalog
	d.projectPath = path

	var errs []error
	for _, a := range r.Articles {
		if err := d.Select(a); err != nil {
			errs = append(errs, err)
		}
	}
	l.opts.logger.Info("wardrobe: project opened",
		"path", path,
		"character", f.CharacterName,
		"selected", d.comp.Len(),
		"missing", len(r.Missing))
	return d, errors.Join(errs...)
}

func (l *Library) newCompositor() *compositor.Compositor {
	return compositor.New(
		compositor.WithLogger(l.opts.logger),
		compositor.WithCacheSize(l.opts.cacheSize),
	)
}
