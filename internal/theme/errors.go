package theme

import (
	"fmt"
	"strings"
)

// ConfigError reports a missing, unreadable, or malformed themes file.
// Fatal: it occurs before any display is constructed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("themes file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnknownThemeError reports a requested theme name absent from the registry.
// Available holds the full sorted set of registry keys so the caller can
// echo every valid option.
type UnknownThemeError struct {
	Name      string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("theme '%s' not found. Available: %s",
		e.Name, strings.Join(e.Available, ", "))
}
