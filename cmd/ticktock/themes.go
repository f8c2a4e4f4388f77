package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tickclock/ticktock/internal/output"
)

var themesOpts struct {
	format string
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List the themes available to the clock display.

Plain output prints one theme per line with its background and foreground
colors. Use --output json or --output yaml for structured output in the
themes file format.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVarP(&themesOpts.format, "output", "o", "plain",
		"Output format (plain, json, yaml)")
}

func runThemes(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.FormatType(themesOpts.format))
	if err != nil {
		return err
	}

	return formatter.Format(os.Stdout, reg.Themes())
}
