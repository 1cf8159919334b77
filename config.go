package sprite

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the generator settings. The defaults reproduce the
// conventional layout: an icons subdirectory next to the tool, and the
// sprite written under a sibling assets directory.
type Config struct {
	IconsDir string `env:"SPRITE_ICONS_DIR" envDefault:"icons"`
	Output   string `env:"SPRITE_OUTPUT" envDefault:"assets/icons-sprite.svg"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
