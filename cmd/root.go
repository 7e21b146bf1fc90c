package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/chris-regnier/ideadice/internal/config"
	"github.com/chris-regnier/ideadice/internal/history"
	"github.com/chris-regnier/ideadice/internal/input"
	"github.com/chris-regnier/ideadice/internal/logging"
	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/chris-regnier/ideadice/internal/session"
	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/chris-regnier/ideadice/internal/storage/diskv"
	"github.com/chris-regnier/ideadice/internal/storage/markdown"
	"github.com/chris-regnier/ideadice/internal/storage/sqlite"
	"github.com/chris-regnier/ideadice/internal/timer"
	"github.com/chris-regnier/ideadice/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.EntryStore
	logger         = logging.Discard()
	closeLog       func() error
)

var rootCmd = &cobra.Command{
	Use:   "ideadice",
	Short: "Distraction-free writing with a random prompt",
	Long: `ideadice rolls three words (a noun, a verb and an emotion) and gives you a
blank page to write about them. Text autosaves as you type. Lock a piece to
keep it from changing, and turn on no-backspace mode to keep moving forward.

Run without a subcommand to start writing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		l, closer, err := logging.Open(appConfig.LogPath(), appConfig.Log.Level)
		if err != nil {
			return err
		}
		logger, closeLog = l, closer

		store, err = openStore(appConfig.Storage, appConfig.DataDir)
		if err != nil {
			closeLog()
			closeLog = nil
			return err
		}
		logger.Debug("store opened", "backend", appConfig.Storage, "data_dir", appConfig.DataDir)
		if p := appConfig.Theme.Preset; p != "" && !slices.Contains(ui.Presets(), p) {
			logger.Warn("unknown theme preset, using default-dark", "preset", p, "available", ui.Presets())
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			defer closeLog()
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Not a terminal: print the history instead.
			return listRun(os.Stdout, listOptions{})
		}
		s := newSession(openHistory())
		return ui.RunWriter(s, ui.WriterConfig{
			MaxWidth: appConfig.MaxWidth,
			Theme:    ui.ResolveTheme(appConfig.Theme),
		})
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (diskv|markdown|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// openStore builds the configured storage backend under dataDir.
func openStore(backend, dataDir string) (storage.EntryStore, error) {
	switch backend {
	case "diskv", "":
		s, err := diskv.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing diskv storage: %w", err)
		}
		return s, nil
	case "markdown":
		s, err := markdown.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

func openHistory() *history.Manager {
	return history.New(store, history.WithLogger(logger))
}

func newSession(h *history.Manager) *session.Controller {
	return session.New(
		h,
		timer.New(nil),
		input.NewFeedback(input.FeedbackConfig{
			Pulse:        appConfig.Feedback.Pulse,
			Gap:          appConfig.Feedback.Gap,
			RepeatWindow: appConfig.Feedback.RepeatWindow,
		}, nil),
		prompt.NewDice(nil),
		session.Config{
			AutosaveInterval: appConfig.AutosaveInterval,
			NoBackspace:      appConfig.NoBackspace,
		},
	)
}
