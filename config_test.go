package sprite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SPRITE_ICONS_DIR", "")
	t.Setenv("SPRITE_OUTPUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "icons", cfg.IconsDir)
	require.Equal(t, "assets/icons-sprite.svg", cfg.Output)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SPRITE_ICONS_DIR", "material")
	t.Setenv("SPRITE_OUTPUT", "dist/material-sprite.svg")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "material", cfg.IconsDir)
	require.Equal(t, "dist/material-sprite.svg", cfg.Output)
}
