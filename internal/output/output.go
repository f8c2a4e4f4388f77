// Package output provides output formatters for theme listings.
package output

import (
	"fmt"
	"io"

	"github.com/tickclock/ticktock/internal/theme"
)

// Formatter writes a theme listing to a writer.
type Formatter interface {
	// Format writes the formatted listing to the writer.
	Format(w io.Writer, themes []theme.Theme) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatPlain:
		return &PlainFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// document mirrors the themes file structure for structured output.
type document struct {
	Themes map[string]entry `json:"themes" yaml:"themes"`
}

type entry struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
}

func newDocument(themes []theme.Theme) document {
	doc := document{Themes: make(map[string]entry, len(themes))}
	for _, t := range themes {
		doc.Themes[t.Name] = entry{
			Background: t.Background,
			Foreground: t.Foreground,
		}
	}
	return doc
}
