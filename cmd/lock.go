package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock <id>",
	Short: "Lock a writing session against changes",
	Example: `  ideadice lock a3kf9x2m
  ideadice lock a3kf9x2m --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLockRun(os.Stdout, args[0], true)
	},
}

var unlockCmd = &cobra.Command{
	Use:     "unlock <id>",
	Short:   "Unlock a writing session so it can be edited again",
	Example: `  ideadice unlock a3kf9x2m`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLockRun(os.Stdout, args[0], false)
	},
}

func setLockRun(w io.Writer, id string, locked bool) error {
	h, _, err := findEntry(id)
	if err != nil {
		return err
	}
	if locked {
		h.LockEntry(id)
	} else {
		h.UnlockEntry(id)
	}
	if err := h.SaveErr(); err != nil {
		return fmt.Errorf("saving entry %s: %w", id, err)
	}
	e, _ := h.Get(id)
	logger.Info("lock changed", "entry_id", id, "locked", e.Locked)

	if jsonOutput {
		return ui.FormatJSON(w, ui.LockResult{ID: id, Locked: e.Locked})
	}
	ui.FormatLockChanged(w, e)
	return nil
}

func init() {
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(unlockCmd)
}
