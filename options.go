package wardrobe

import (
	"log/slog"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/compositor"
	"github.com/gogpu/wardrobe/internal/assetcache"
	"github.com/gogpu/wardrobe/view"
)

// Option configures a Library during creation. Documents opened from the
// library inherit its settings.
//
// Example:
//
//	lib, err := wardrobe.NewLibrary("./res",
//	    wardrobe.WithDefaultBody(),
//	    wardrobe.WithPadding(4),
//	)
type Option func(*options)

type options struct {
	logger      *slog.Logger
	inventory   string
	padding     int
	zoom        view.Zoom
	cacheSize   int
	defaultBody bool
}

func defaultOptions() options {
	return options{
		inventory: catalog.DefaultInventory,
		padding:   compositor.DefaultPadding,
		zoom:      view.NewZoom(),
		cacheSize: assetcache.DefaultCapacity,
	}
}

// WithLogger sets the logger used by the library and its documents.
// Without it the library uses Logger() as it was at creation.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInventory sets the inventory filename used when Open or Catalog get
// an empty name. The default is catalog.DefaultInventory.
func WithInventory(name string) Option {
	return func(o *options) {
		if name != "" {
			o.inventory = name
		}
	}
}

// WithPadding sets the margin Render adds around a composite.
// Negative values are treated as zero.
func WithPadding(px int) Option {
	return func(o *options) {
		o.padding = max(0, px)
	}
}

// WithZoom sets the initial zoom of new documents.
func WithZoom(z view.Zoom) Option {
	return func(o *options) {
		if z.Scale() > 0 {
			o.zoom = z
		}
	}
}

// WithCacheSize sets how many decoded images each document keeps.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithDefaultBody makes Open select the first article of the "body"
// category, so a freshly opened character is not an empty canvas.
func WithDefaultBody() Option {
	return func(o *options) {
		o.defaultBody = true
	}
}
