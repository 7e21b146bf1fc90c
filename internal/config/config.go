package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ThemeConfig holds theme overrides. Empty fields fall back to the preset.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// FeedbackConfig tunes the no-backspace attempt pulse.
type FeedbackConfig struct {
	Pulse        time.Duration `mapstructure:"pulse"`
	Gap          time.Duration `mapstructure:"gap"`
	RepeatWindow time.Duration `mapstructure:"repeat_window"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config holds the application configuration.
type Config struct {
	Storage          string         `mapstructure:"storage"`
	DataDir          string         `mapstructure:"data_dir"`
	Editor           string         `mapstructure:"editor"`
	AutosaveInterval time.Duration  `mapstructure:"autosave_interval"`
	NoBackspace      bool           `mapstructure:"no_backspace"`
	MaxWidth         int            `mapstructure:"max_width"`
	Feedback         FeedbackConfig `mapstructure:"feedback"`
	Log              LogConfig      `mapstructure:"log"`
	Theme            ThemeConfig    `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.ideadice/).
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", ".ideadice")
	}
	return filepath.Join(home, ".ideadice")
}

// LogPath is where the log goes when log.file is unset.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "ideadice.log")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "diskv")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("autosave_interval", "2s")
	v.SetDefault("no_backspace", false)
	v.SetDefault("max_width", 100)
	v.SetDefault("feedback.pulse", "300ms")
	v.SetDefault("feedback.gap", "100ms")
	v.SetDefault("feedback.repeat_window", "600ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("theme.preset", "default-dark")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "ideadice"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: IDEADICE_STORAGE, IDEADICE_DATA_DIR, etc.
	v.SetEnvPrefix("IDEADICE")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	dir, err := homedir.Expand(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir

	if cfg.Log.File != "" {
		logFile, err := homedir.Expand(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		cfg.Log.File = logFile
	}

	return cfg, nil
}
