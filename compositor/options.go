package compositor

import (
	"log/slog"

	"github.com/gogpu/wardrobe/internal/assetcache"
)

// Loader resolves an article image path to decoded pixels.
type Loader interface {
	Load(path string) (*Image, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*Image, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (*Image, error) { return f(path) }

// Option configures a Compositor during creation.
//
// Example:
//
//	c := compositor.New(
//	    compositor.WithLogger(slog.Default()),
//	    compositor.WithCacheSize(64),
//	)
type Option func(*options)

type options struct {
	logger *slog.Logger
	loader Loader
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader == nil {
		o.loader = assetcache.New(assetcache.DefaultCapacity)
	}
	return o
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLoader replaces the default cached file loader.
func WithLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithCacheSize sets the capacity of the default cached file loader.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.loader = assetcache.New(n)
	}
}
