// Package fixture builds throwaway resource trees for tests.
package fixture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Record is one inventory line.
type Record struct {
	ID, Image, Category, Layer string
	X, Y                       int
}

// Line renders the record in inventory format.
func (r Record) Line() string {
	return fmt.Sprintf(`"%s" "%s" "%s" "%s" "%d" "%d" "-1"`, r.ID, r.Image, r.Category, r.Layer, r.X, r.Y)
}

// Tree is a resource root created under t.TempDir.
type Tree struct {
	Root string
	t    *testing.T
}

// New creates an empty resource root.
func New(t *testing.T) *Tree {
	t.Helper()
	return &Tree{Root: t.TempDir(), t: t}
}

// Inventory writes <root>/<character>/<file> holding the data marker followed
// by records.
func (tr *Tree) Inventory(character, file string, records ...Record) {
	tr.t.Helper()
	lines := []string{"# generated", "HCDataSetFile_data"}
	for _, r := range records {
		lines = append(lines, r.Line())
	}
	tr.Write(filepath.Join(character, file), strings.Join(lines, "\n")+"\n")
}

// Image writes a solid w×h PNG at <root>/<character>/data/<name>.
func (tr *Tree) Image(character, name string, w, h int, c color.NRGBA) {
	tr.t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tr.t.Fatal(err)
	}
	tr.Write(filepath.Join(character, "data", name), buf.String())
}

// Write creates a file relative to the root, making parent directories.
func (tr *Tree) Write(rel, content string) string {
	tr.t.Helper()
	path := filepath.Join(tr.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tr.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tr.t.Fatal(err)
	}
	return path
}

// Hero writes the two-article "hero" character used across tests:
// a red 1×1 body at (0,0) and a blue 1×1 shirt at (10,20).
func (tr *Tree) Hero() {
	tr.t.Helper()
	tr.Inventory("hero", "articles.txt",
		Record{ID: "1", Image: "body.png", Category: "body", Layer: "body"},
		Record{ID: "2", Image: "shirt.png", Category: "tops", Layer: "tops", X: 10, Y: 20},
	)
	tr.Image("hero", "body.png", 1, 1, Red)
	tr.Image("hero", "shirt.png", 1, 1, Blue)
}

// Solid colors used by fixtures.
var (
	Red   = color.NRGBA{R: 255, A: 255}
	Green = color.NRGBA{G: 255, A: 255}
	Blue  = color.NRGBA{B: 255, A: 255}
)
