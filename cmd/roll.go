package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a writing prompt without starting a session",
	Example: `  ideadice roll
  ideadice roll --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rollRun(os.Stdout, prompt.NewDice(nil))
	},
}

func rollRun(w io.Writer, d *prompt.Dice) error {
	words := d.Roll()
	if jsonOutput {
		return ui.FormatJSON(w, words)
	}
	ui.FormatWords(w, words)
	return nil
}

func init() {
	rootCmd.AddCommand(rollCmd)
}
