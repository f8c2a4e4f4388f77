package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tickclock/ticktock/internal/theme"
)

// YAMLFormatter emits the listing as YAML.
type YAMLFormatter struct{}

// Format writes the listing as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, themes []theme.Theme) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(newDocument(themes))
}
