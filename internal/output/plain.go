package output

import (
	"fmt"
	"io"

	"github.com/tickclock/ticktock/internal/theme"
)

// PlainFormatter formats themes as aligned plain text, one per line.
type PlainFormatter struct{}

// Format writes each theme name with its background and foreground colors.
func (f *PlainFormatter) Format(w io.Writer, themes []theme.Theme) error {
	width := 0
	for _, t := range themes {
		if len(t.Name) > width {
			width = len(t.Name)
		}
	}

	for _, t := range themes {
		if _, err := fmt.Fprintf(w, "%-*s  %s %s\n",
			width, t.Name, t.Background, t.Foreground); err != nil {
			return err
		}
	}
	return nil
}
