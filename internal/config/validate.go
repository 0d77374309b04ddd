package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Resources.Root == "" {
		return fmt.Errorf("resources.root must not be empty")
	}
	if c.Render.Padding < 0 {
		return fmt.Errorf("render.padding must be >= 0 (got %d)", c.Render.Padding)
	}
	if c.View.Zoom <= 0 {
		return fmt.Errorf("view.zoom must be > 0 (got %v)", c.View.Zoom)
	}
	if c.View.ZoomStep <= 0 {
		return fmt.Errorf("view.zoom_step must be > 0 (got %v)", c.View.ZoomStep)
	}
	if c.Sheet.ThumbSize <= 0 {
		return fmt.Errorf("sheet.thumb_size must be > 0 (got %d)", c.Sheet.ThumbSize)
	}
	if c.Sheet.Columns <= 0 {
		return fmt.Errorf("sheet.columns must be > 0 (got %d)", c.Sheet.Columns)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0 (got %d)", c.Cache.Size)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}
