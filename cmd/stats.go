package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/chris-regnier/ideadice/internal/stats"
	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show writing totals and your daily streak",
	Long: `Show how much you have written, how much of it today, and how many
consecutive days you have written.

Use --format with a Go template for custom output, e.g. in a shell prompt.
Fields: .Entries .Locked .Words .TodayWords .WroteToday .Streak`,
	Example: `  ideadice stats
  ideadice stats --json
  ideadice stats --format "{{.Streak}}d {{.TodayWords}}w"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsRun(os.Stdout, statsFormat, time.Now())
	},
}

func statsRun(w io.Writer, format string, now time.Time) error {
	s := stats.Compute(openHistory().Entries(), now)

	if jsonOutput {
		return ui.FormatJSON(w, s)
	}
	if format != "" {
		tmpl, err := template.New("stats").Parse(format)
		if err != nil {
			return fmt.Errorf("invalid format template: %w", err)
		}
		if err := tmpl.Execute(w, s); err != nil {
			return fmt.Errorf("executing format template: %w", err)
		}
		fmt.Fprintln(w)
		return nil
	}

	ui.FormatStats(w, s)
	return nil
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statsCmd)
}
