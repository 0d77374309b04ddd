package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/gogpu/wardrobe/compositor"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "./wardrobe.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file is path, else $WARDROBE_CONFIG, else DefaultPath. A missing
// DefaultPath is not an error; configuration then comes from ENV and
// defaults only. A missing explicit file is an error.
func Load(path string) (*Config, error) {
	cfg := Config{Render: RenderConfig{Padding: compositor.DefaultPadding}}

	if path == "" {
		path = os.Getenv("WARDROBE_CONFIG")
	}
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
