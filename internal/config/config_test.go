package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Empty(t, cfg.ThemesFile)
	assert.True(t, cfg.Clock.SecondHand)
	assert.False(t, cfg.Clock.TwelveHour)
	assert.True(t, cfg.Clock.HotReload)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
theme = "nord"
themes_file = "/etc/ticktock/themes.json"

[clock]
second_hand = false
twelve_hour = true
hot_reload = false
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "/etc/ticktock/themes.json", cfg.ThemesFile)
	assert.False(t, cfg.Clock.SecondHand)
	assert.True(t, cfg.Clock.TwelveHour)
	assert.False(t, cfg.Clock.HotReload)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`theme = "dracula"`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dracula", cfg.Theme)
	assert.True(t, cfg.Clock.SecondHand, "unset keys keep defaults")
	assert.True(t, cfg.Clock.HotReload)
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`theme = [broken`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigPath_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, "/tmp/xdg/ticktock/config.toml", ConfigPath())
	assert.Equal(t, "/tmp/xdg/ticktock/themes.json", ThemesPath())
}
