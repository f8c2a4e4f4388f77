package output

import (
	"encoding/json"
	"io"

	"github.com/tickclock/ticktock/internal/theme"
)

// JSONFormatter emits the listing in the themes file format.
type JSONFormatter struct{}

// Format writes indented JSON.
func (f *JSONFormatter) Format(w io.Writer, themes []theme.Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(themes))
}
