package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/durpick/internal/util"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

// FieldError reports which settings key failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RepeatSettings tunes press-and-hold stepping.
type RepeatSettings struct {
	Delay    time.Duration `yaml:"delay,omitempty"`
	Interval time.Duration `yaml:"interval,omitempty"`
}

// Settings is the optional user configuration, read from
// $XDG_CONFIG_HOME/durpick/config.yaml.
type Settings struct {
	Theme      string         `yaml:"theme,omitempty"`
	Format     string         `yaml:"format,omitempty"`
	FocusDelay time.Duration  `yaml:"focus_delay,omitempty"`
	Repeat     RepeatSettings `yaml:"repeat,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:      DefaultTheme,
		Format:     FormatClock,
		FocusDelay: FocusDelay,
		Repeat: RepeatSettings{
			Delay:    RepeatDelay,
			Interval: RepeatInterval,
		},
	}
}

// SettingsPath returns the default settings file location, or "" when no
// home directory can be resolved.
func SettingsPath() string {
	dir := util.ConfigDir(AppName)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// LoadSettings reads the default settings file.
func LoadSettings() (Settings, error) {
	path := SettingsPath()
	if path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from path. A missing file is not an error;
// keys absent from the file keep their defaults.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Repeat.Delay <= 0 {
		return &FieldError{Field: "repeat.delay", Err: fmt.Errorf("%w: must be positive", ErrInvalidSettings)}
	}
	if s.Repeat.Interval <= 0 {
		return &FieldError{Field: "repeat.interval", Err: fmt.Errorf("%w: must be positive", ErrInvalidSettings)}
	}
	if s.FocusDelay < 0 {
		return &FieldError{Field: "focus_delay", Err: fmt.Errorf("%w: must not be negative", ErrInvalidSettings)}
	}
	if !ValidFormat(s.Format) {
		return &FieldError{Field: "format", Err: fmt.Errorf("%w: unknown format %q", ErrInvalidSettings, s.Format)}
	}
	return nil
}

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatClock, FormatSeconds, FormatGo:
		return true
	}
	return false
}
