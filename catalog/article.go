package catalog

// Article is one selectable visual item: an image, where it sits in the
// composite, and which layer it occupies.
//
// Articles are values; a loaded catalog never mutates them.
type Article struct {
	// ID identifies the article within its layer. The inventory format reuses
	// ids for pose variants of the same item, so ids are not unique across a
	// catalog.
	ID string

	// Image is the source image filename as written in the inventory.
	Image string

	// Category is the browsing key (e.g. "tops").
	Category string

	// Layer is the exclusivity key used for compositing and z-order.
	// Usually equal to Category.
	Layer string

	// X, Y are the placement offset of the image's top-left corner in the
	// composite's coordinate space.
	X, Y int

	// Wearing is an opaque flag carried over from the inventory.
	Wearing string

	// Path is the resolved image location, <root>/<character>/data/<Image>.
	Path string
}

// LayerOrder lists layers from back to front. Layers absent from the list
// stack with "behind".
var LayerOrder = []string{
	"behind",
	"body",
	"hair",
	"underware",
	"tops",
	"shoes",
	"bottoms",
	"jackets",
	"hats",
	"infront",
}

var layerZ = func() map[string]int {
	m := make(map[string]int, len(LayerOrder))
	for i, name := range LayerOrder {
		m[name] = i
	}
	return m
}()

// LayerZ returns the stacking index of layer: its position in LayerOrder,
// or 0 when the layer is unknown.
func LayerZ(layer string) int {
	return layerZ[layer]
}
