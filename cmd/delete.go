package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a writing session",
	Long:  "Permanently delete a writing session. Requires confirmation unless --force is used.",
	Example: `  ideadice delete a3kf9x2m
  ideadice delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(os.Stdout, args[0], forceDelete, ui.Confirm)
	},
}

type confirmFunc func(prompt string, theme ui.Theme) (bool, error)

func deleteRun(w io.Writer, id string, force bool, confirm confirmFunc) error {
	h, e, err := findEntry(id)
	if err != nil {
		return err
	}

	if !force {
		fmt.Fprintf(w, "Entry: %s (%s)\n", e.ID, e.UpdatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "Preview: %s\n\n", e.Preview(60))

		confirmed, err := confirm("Delete this entry? This cannot be undone.", ui.ResolveTheme(appConfig.Theme))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	h.DeleteEntry(id)
	if err := h.SaveErr(); err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}
	logger.Info("entry deleted", "entry_id", id)

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{ID: id, Deleted: true})
	}
	ui.FormatEntryDeleted(w, id)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
