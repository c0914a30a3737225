package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/filetug/dirbuf/pkg/fsutils"
	"github.com/filetug/dirbuf/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "DIRBUF"

const DefaultUserDir = "~/.dirbuf"

const BookmarksFileName = "dirbuf-bookmarks.yaml"

var osUserHomeDir = os.UserHomeDir

// UserDir returns the absolute settings directory under the user's home.
func UserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return DefaultUserDir, err
	}
	return filepath.Join(userHomeDir, DefaultUserDir[2:]), nil
}

// Config holds all application configuration.
type Config struct {
	SettingsDir   string `envconfig:"SETTINGS_DIR" default:"~/.dirbuf"`
	BookmarksFile string `envconfig:"BOOKMARKS_FILE" default:"dirbuf-bookmarks.yaml"`
	Workspace     string `envconfig:"WORKSPACE"`
	Style         string `envconfig:"STYLE" default:"dracula"`

	// Embedded so their keys stay directly under the DIRBUF prefix.
	ListingConfig
	LogConfig
}

// ListingConfig holds the initial session toggles.
type ListingConfig struct {
	ShowFullPaths bool `envconfig:"SHOW_FULL_PATHS" default:"false"`
	ShowHidden    bool `envconfig:"SHOW_HIDDEN" default:"true"`
	ShowHelp      bool `envconfig:"SHOW_HELP" default:"false"`
	ShowBookmarks bool `envconfig:"SHOW_BOOKMARKS" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// BookmarksPath is the bookmarks file, relative names resolved against the
// settings directory.
func (c *Config) BookmarksPath() string {
	p := fsutils.ExpandHome(c.BookmarksFile)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.SettingsDir, p)
}

func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogConfig.Level
	cfg.Development = c.LogConfig.Development
	return cfg
}

// Load reads configuration from DIRBUF_* environment variables. When envFile
// is set it is loaded first; variables already present in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SettingsDir = fsutils.ExpandHome(cfg.SettingsDir)
	cfg.Workspace = fsutils.ExpandHome(cfg.Workspace)
	return &cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() *Config {
	dir, _ := UserDir()
	return &Config{
		SettingsDir:   dir,
		BookmarksFile: BookmarksFileName,
		Style:         "dracula",
		ListingConfig: ListingConfig{
			ShowHidden:    true,
			ShowBookmarks: true,
		},
		LogConfig: LogConfig{Level: "warn"},
	}
}
