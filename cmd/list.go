package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/history"
	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

type listOptions struct {
	search     string
	lockedOnly bool
	idOnly     bool
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List writing sessions",
	Long:  "List writing sessions, most recently touched first.",
	Example: `  ideadice list
  ideadice list --search lighthouse
  ideadice list --locked
  ideadice list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(os.Stdout, listOpts)
	},
}

func listRun(w io.Writer, opts listOptions) error {
	entries := openHistory().Entries()
	if opts.search != "" {
		entries = history.Search(entries, opts.search)
	}
	if opts.lockedOnly {
		locked := entries[:0]
		for _, e := range entries {
			if e.Locked {
				locked = append(locked, e)
			}
		}
		entries = locked
	}

	if opts.idOnly {
		for _, e := range entries {
			fmt.Fprintln(w, e.ID)
		}
		return nil
	}
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(entries))
	}

	var buf bytes.Buffer
	ui.FormatEntryList(&buf, entries)
	return ui.OutputOrPage(w, buf.String(), false, appConfig.MaxWidth, ui.ResolveTheme(appConfig.Theme))
}

// findEntry loads the history and looks up id.
func findEntry(id string) (*history.Manager, entry.Entry, error) {
	if err := entry.ValidateID(id); err != nil {
		return nil, entry.Entry{}, err
	}
	h := openHistory()
	e, ok := h.Get(id)
	if !ok {
		return nil, entry.Entry{}, fmt.Errorf("entry %s not found", id)
	}
	return h, e, nil
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "", "fuzzy search titles and text")
	listCmd.Flags().BoolVar(&listOpts.lockedOnly, "locked", false, "only show locked entries")
	listCmd.Flags().BoolVar(&listOpts.idOnly, "id-only", false, "print just entry IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
