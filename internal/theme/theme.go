// Package theme provides the color theme registry for the clock display.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Theme is a named pair of colors controlling the background and the digit
// foreground of the display. Immutable after load.
type Theme struct {
	Name       string
	Background string
	Foreground string
}

// Registry holds all themes loaded from a themes file, keyed by name.
// It is populated once at load time and read-only afterwards.
type Registry struct {
	themes map[string]Theme
	path   string
}

// registryFile mirrors the on-disk themes document:
// {"themes": {"<name>": {"background": "...", "foreground": "..."}}}
type registryFile struct {
	Themes map[string]struct {
		Background string `json:"background"`
		Foreground string `json:"foreground"`
	} `json:"themes"`
}

// Load reads and parses a themes file.
// Returns a *ConfigError if the file is missing, unreadable, or malformed,
// or if any theme entry is missing a color.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	reg, err := parse(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	reg.path = path
	return reg, nil
}

// parse decodes a themes document and validates every entry.
// Entries with an empty color are rejected here rather than at render time.
func parse(data []byte) (*Registry, error) {
	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if len(file.Themes) == 0 {
		return nil, errors.New("no themes defined")
	}

	themes := make(map[string]Theme, len(file.Themes))
	for name, entry := range file.Themes {
		if entry.Background == "" {
			return nil, fmt.Errorf("theme %q: missing background color", name)
		}
		if entry.Foreground == "" {
			return nil, fmt.Errorf("theme %q: missing foreground color", name)
		}
		themes[name] = Theme{
			Name:       name,
			Background: entry.Background,
			Foreground: entry.Foreground,
		}
	}

	return &Registry{themes: themes}, nil
}

// Resolve looks up a theme by name. Pure lookup, no side effects.
// An absent name yields an *UnknownThemeError carrying the requested name
// and the full sorted list of registry keys.
func (r *Registry) Resolve(name string) (Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, &UnknownThemeError{Name: name, Available: r.Names()}
	}
	return t, nil
}

// Names returns all theme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Themes returns all themes sorted by name.
func (r *Registry) Themes() []Theme {
	themes := make([]Theme, 0, len(r.themes))
	for _, name := range r.Names() {
		themes = append(themes, r.themes[name])
	}
	return themes
}

// Len returns the number of themes in the registry.
func (r *Registry) Len() int {
	return len(r.themes)
}

// Path returns the file the registry was loaded from.
// Empty for the embedded bundle.
func (r *Registry) Path() string {
	return r.path
}
