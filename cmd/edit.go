package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/editor"
	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a writing session in your editor",
	Long: `Open an existing writing session in your configured editor.

Locked sessions cannot be edited; unlock them first.`,
	Example: `  ideadice edit a3kf9x2m
  EDITOR=nano ideadice edit a3kf9x2m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRun(os.Stdout, args[0])
	},
}

func editRun(w io.Writer, id string) error {
	h, e, err := findEntry(id)
	if err != nil {
		return err
	}
	if e.Locked {
		return fmt.Errorf("entry %s is locked; run 'ideadice unlock %s' first", id, id)
	}

	content, changed, err := editor.Edit(editor.ResolveEditor(appConfig.Editor), e.Content)
	if err != nil {
		return err
	}
	if !changed {
		if jsonOutput {
			return ui.FormatJSON(w, e)
		}
		ui.FormatNoChanges(w, id)
		return nil
	}

	h.SetActiveEntry(id)
	h.Autosave(content)
	if err := h.SaveErr(); err != nil {
		return fmt.Errorf("saving entry %s: %w", id, err)
	}
	updated, ok := h.Current()
	if !ok {
		return fmt.Errorf("entry %s disappeared while editing", id)
	}
	logger.Info("entry edited", "entry_id", updated.ID, "words", updated.WordCount())

	if jsonOutput {
		return ui.FormatJSON(w, updated)
	}
	ui.FormatEntryUpdated(w, updated)
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
