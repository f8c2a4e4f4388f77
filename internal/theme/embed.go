package theme

import (
	"embed"
)

// bundledThemes contains the built-in themes document.
//
//go:embed themes.json
var bundledThemes embed.FS

// bundleName is the embedded themes document filename.
const bundleName = "themes.json"

// DefaultThemeName is the theme used when none is requested.
const DefaultThemeName = "gruvbox"

// LoadDefault parses the embedded themes bundle. It is used when no user
// themes file exists and no explicit path was given.
func LoadDefault() (*Registry, error) {
	data, err := bundledThemes.ReadFile(bundleName)
	if err != nil {
		return nil, &ConfigError{Path: bundleName, Err: err}
	}

	reg, err := parse(data)
	if err != nil {
		return nil, &ConfigError{Path: bundleName, Err: err}
	}

	return reg, nil
}
