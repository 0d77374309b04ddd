// Package catalog parses character inventory files into a queryable set of
// articles grouped by category.
//
// A resource tree looks like:
//
//	<root>/<character>/articles*.txt      inventory files
//	<root>/<character>/data/<image>       article images
//
// Inventory files are forgiving: malformed lines are skipped and a missing
// inventory file yields an empty catalog. Only a missing resource root is an
// error.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultInventory is the inventory file opened when none is named.
const DefaultInventory = "articles.txt"

// dataDirName is the per-character directory holding article images.
const dataDirName = "data"

// ErrRootNotFound is returned when the resource root does not exist.
var ErrRootNotFound = errors.New("catalog: resource root not found")

// Catalog is the parsed inventory for one character and one inventory file.
type Catalog struct {
	// Name is the character identifier.
	Name string

	// InventoryFile is the inventory filename relative to the character dir.
	InventoryFile string

	// Dir is the character directory, <root>/<character>.
	Dir string

	articles      []Article
	categories    map[string][]Article
	categoryOrder []string
}

// New builds a catalog from already parsed articles. Category lists keep the
// order of articles.
func New(name, inventoryFile string, articles []Article) *Catalog {
	c := &Catalog{
		Name:          name,
		InventoryFile: inventoryFile,
		articles:      articles,
		categories:    make(map[string][]Article),
	}
	for _, a := range articles {
		if _, ok := c.categories[a.Category]; !ok {
			c.categoryOrder = append(c.categoryOrder, a.Category)
		}
		c.categories[a.Category] = append(c.categories[a.Category], a)
	}
	return c
}

// Load reads <root>/<character>/<inventoryFile>.
//
// A missing inventory file is logged as a warning and produces an empty
// catalog. A missing root returns ErrRootNotFound.
func Load(root, character, inventoryFile string, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if inventoryFile == "" {
		inventoryFile = DefaultInventory
	}

	dir := filepath.Join(root, character)
	path := filepath.Join(dir, inventoryFile)

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		o.logger.Warn("catalog: inventory not found", "path", path, "err", err)
		c := New(character, inventoryFile, nil)
		c.Dir = dir
		return c, nil
	}
	defer func() { _ = f.Close() }()

	articles, err := Parse(f, filepath.Join(dir, dataDirName), opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}

	c := New(character, inventoryFile, articles)
	c.Dir = dir
	o.logger.Info("catalog: loaded",
		"character", character,
		"inventory", inventoryFile,
		"articles", len(articles),
		"categories", len(c.categoryOrder))
	return c, nil
}

// Len returns the number of articles.
func (c *Catalog) Len() int { return len(c.articles) }

// Empty reports whether the catalog has no articles.
func (c *Catalog) Empty() bool { return len(c.articles) == 0 }

// Articles returns all articles in inventory file order.
// The returned slice must not be modified.
func (c *Catalog) Articles() []Article { return c.articles }

// Categories returns category names in order of first appearance.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categoryOrder))
	copy(out, c.categoryOrder)
	return out
}

// HasCategory reports whether name has at least one article.
func (c *Catalog) HasCategory(name string) bool {
	return len(c.categories[name]) > 0
}

// ArticlesByCategory returns the articles of a category in catalog order,
// or nil for an unknown category.
// The returned slice must not be modified.
func (c *Catalog) ArticlesByCategory(name string) []Article {
	return c.categories[name]
}

// FindByID returns the first article, in catalog order, whose ID matches.
//
// IDs repeat across pose variants; project files store only IDs and
// resolve through this lookup, so the first match wins.
func (c *Catalog) FindByID(id string) (Article, bool) {
	for _, a := range c.articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// LayerZ returns the stacking index of the article's layer.
func (c *Catalog) LayerZ(a Article) int {
	return LayerZ(a.Layer)
}
