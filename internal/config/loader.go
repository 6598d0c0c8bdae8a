package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file.
	ProjectConfigFile = "chemref.yaml"
	// UserConfigDir is the directory for user-level config, relative to home.
	UserConfigDir = ".config/chemref"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger

	// home and cwd are overridable for tests.
	home string
	cwd  string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	if home, err := os.UserHomeDir(); err == nil {
		l.home = home
	}
	if cwd, err := os.Getwd(); err == nil {
		l.cwd = cwd
	}
	return l
}

// Load builds the configuration with layered precedence:
//  1. Defaults
//  2. User config (~/.config/chemref/config.yaml)
//  3. Project config (chemref.yaml in the current or a parent directory),
//     or explicit when non-empty, which must exist
//
// Command-line flags are applied on top by the caller.
func (l *Loader) Load(explicit string) (*Config, error) {
	config := DefaultConfig()

	if userPath := l.userConfigPath(); userPath != "" {
		if userConfig, err := LoadFromFile(userPath); err == nil {
			l.logger.Debug("loaded user config", slog.String("path", userPath))
			config.Merge(userConfig)
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	path := explicit
	if path == "" {
		path = l.findProjectConfig()
	}
	if path != "" {
		projectConfig, err := LoadFromFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, err
		}
		l.logger.Debug("loaded config", slog.String("path", path))
		config.Merge(projectConfig)
	} else {
		l.logger.Debug("no project config found")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) userConfigPath() string {
	if l.home == "" {
		return ""
	}
	return filepath.Join(l.home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for chemref.yaml in the current and parent directories.
func (l *Loader) findProjectConfig() string {
	if l.cwd == "" {
		return ""
	}

	dir := l.cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
