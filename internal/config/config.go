// Package config loads wardrobe settings from a YAML file and WARDROBE_*
// environment variables.
package config

// Config is the root configuration.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Render    RenderConfig    `yaml:"render"`
	View      ViewConfig      `yaml:"view"`
	Sheet     SheetConfig     `yaml:"sheet"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
}

// ResourcesConfig locates character resources.
type ResourcesConfig struct {
	Root         string `yaml:"root"          env:"WARDROBE_RES_ROOT"      env-default:"./res"`
	ArticlesFile string `yaml:"articles_file" env:"WARDROBE_ARTICLES_FILE" env-default:"articles.txt"`
	DefaultBody  bool   `yaml:"default_body"  env:"WARDROBE_DEFAULT_BODY"`
}

// RenderConfig holds composite rendering settings.
type RenderConfig struct {
	// Padding has no env-default tag: cleanenv would treat an explicit 0 as
	// unset. Load seeds it with compositor.DefaultPadding instead.
	Padding int `yaml:"padding" env:"WARDROBE_RENDER_PADDING"`
}

// ViewConfig holds preview zoom settings.
type ViewConfig struct {
	Zoom     float64 `yaml:"zoom"      env:"WARDROBE_VIEW_ZOOM"      env-default:"4.0"`
	ZoomStep float64 `yaml:"zoom_step" env:"WARDROBE_VIEW_ZOOM_STEP" env-default:"0.5"`
}

// SheetConfig holds asset sheet layout.
type SheetConfig struct {
	ThumbSize int `yaml:"thumb_size" env:"WARDROBE_SHEET_THUMB_SIZE" env-default:"128"`
	Columns   int `yaml:"columns"    env:"WARDROBE_SHEET_COLUMNS"    env-default:"6"`
}

// CacheConfig sizes the per-document decoded image cache.
type CacheConfig struct {
	Size int `yaml:"size" env:"WARDROBE_CACHE_SIZE" env-default:"256"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WARDROBE_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WARDROBE_LOG_FORMAT" env-default:"text"`
}
