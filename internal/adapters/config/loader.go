// Package config provides the loader for the optional tool settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/thewilloftheshadow/bun-deps/internal/core/domain"
	"github.com/thewilloftheshadow/bun-deps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at the given project root. An absent file
// yields the built-in defaults; a present but unreadable or unparseable
// file is an error.
func (l *Loader) Load(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, domain.SettingsFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is rooted at the discovered project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}

	if file.Registry != "" {
		settings.Registry = file.Registry
	}
	if file.TimeoutSeconds > 0 {
		settings.Timeout = time.Duration(file.TimeoutSeconds) * time.Second
	} else if file.TimeoutSeconds < 0 {
		l.Logger.Warn(fmt.Sprintf("'timeout_seconds' in %s must be positive, using the default", domain.SettingsFileName))
	}
	settings.NoCache = file.NoCache

	return settings, nil
}
