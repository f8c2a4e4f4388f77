package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeThemes writes a themes document to a temp file and returns its path.
func writeThemes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themes.json")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoad_WellFormed(t *testing.T) {
	path := writeThemes(t, `{"themes": {"gruvbox": {"background": "#282828", "foreground": "#fbf1c7"}}}`)

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, path, reg.Path())

	th, err := reg.Resolve("gruvbox")
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", th.Name)
	assert.Equal(t, "#282828", th.Background)
	assert.Equal(t, "#fbf1c7", th.Foreground)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/themes.json")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "/nonexistent/themes.json", cfgErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeThemes(t, `{not json at all`)

	_, err := Load(path)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_EmptyRegistry(t *testing.T) {
	path := writeThemes(t, `{"themes": {}}`)

	_, err := Load(path)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "no themes defined")
}

func TestLoad_MissingBackground(t *testing.T) {
	path := writeThemes(t, `{"themes": {"broken": {"foreground": "#ffffff"}}}`)

	_, err := Load(path)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "missing background color")
}

func TestLoad_MissingForeground(t *testing.T) {
	path := writeThemes(t, `{"themes": {"broken": {"background": "#000000", "foreground": ""}}}`)

	_, err := Load(path)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "missing foreground color")
}

func TestResolve_Unknown(t *testing.T) {
	path := writeThemes(t, `{"themes": {
		"cherry": {"background": "#1a1a1a", "foreground": "#ff5555"},
		"apple":  {"background": "#0a0a0a", "foreground": "#55ff55"},
		"banana": {"background": "#2a2a2a", "foreground": "#ffff55"}
	}}`)

	reg, err := Load(path)
	require.NoError(t, err)

	_, err = reg.Resolve("mango")

	var unknown *UnknownThemeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mango", unknown.Name)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, unknown.Available)
	assert.Equal(t, "theme 'mango' not found. Available: apple, banana, cherry", err.Error())
}

func TestNames_Sorted(t *testing.T) {
	path := writeThemes(t, `{"themes": {
		"zebra": {"background": "#000000", "foreground": "#ffffff"},
		"alpha": {"background": "#000000", "foreground": "#ffffff"}
	}}`)

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "zebra"}, reg.Names())
}

func TestThemes_SortedByName(t *testing.T) {
	path := writeThemes(t, `{"themes": {
		"zebra": {"background": "#000001", "foreground": "#fffff1"},
		"alpha": {"background": "#000002", "foreground": "#fffff2"}
	}}`)

	reg, err := Load(path)
	require.NoError(t, err)

	themes := reg.Themes()
	require.Len(t, themes, 2)
	assert.Equal(t, "alpha", themes[0].Name)
	assert.Equal(t, "#000002", themes[0].Background)
	assert.Equal(t, "zebra", themes[1].Name)
	assert.Equal(t, "#fffff1", themes[1].Foreground)
}
