// Package wardrobe composes 2D character sprites from layered articles.
//
// # Overview
//
// A character is a directory of article images plus one or more inventory
// files describing where each image sits and which layer it occupies.
// wardrobe loads an inventory into a catalog, lets the caller pick at most
// one article per layer, and blends the picks into a single image with
// pixel-exact source-over compositing. Selections are saved and restored as
// small JSON project files.
//
// # Quick Start
//
//	import "github.com/gogpu/wardrobe"
//
//	lib, err := wardrobe.NewLibrary("./res")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := lib.Open("hero", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Dress the character at random and save the result
//	_ = doc.Randomize(nil)
//	_ = doc.Export("hero.png")
//	_ = doc.SaveProject("hero.stp")
//
// # Resource Layout
//
//	<root>/<character>/articles.txt   inventory (other names allowed)
//	<root>/<character>/data/*.gif     article images
//
// # Layers
//
// Layers stack back to front in the order of catalog.LayerOrder:
// behind, body, hair, underware, tops, shoes, bottoms, jackets, hats,
// infront. Unknown layers stack with "behind".
//
// # Packages
//
//   - catalog: inventory parsing and category lookup
//   - compositor: per-layer selection and rendering
//   - project: project file encoding and restore
//   - randomize: random outfits
//   - view: zoomed previews
//   - sheet: captioned thumbnail sheets of a catalog's images
//
// # Logging
//
// wardrobe is silent by default. Call SetLogger to route its diagnostics to
// a slog.Logger.
package wardrobe
