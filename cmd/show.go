package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a writing session",
	Long:  "Display the full text and metadata of a writing session.",
	Example: `  ideadice show a3kf9x2m
  ideadice show a3kf9x2m --content-only
  ideadice show a3kf9x2m --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(os.Stdout, args[0], showContentOnly)
	},
}

func showRun(w io.Writer, id string, contentOnly bool) error {
	_, e, err := findEntry(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, e)
	}
	if contentOnly {
		fmt.Fprintln(w, e.Content)
		return nil
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	var buf bytes.Buffer
	ui.FormatEntryFull(&buf, e, theme.MarkdownStyle)
	return ui.OutputOrPage(w, buf.String(), false, appConfig.MaxWidth, theme)
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the text")
	rootCmd.AddCommand(showCmd)
}
