// Package config loads the files an overlay application is driven by:
// user settings, layout and color tables, and key bindings.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Values are the user-tunable settings.
type Values struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	FPS        int     `mapstructure:"fps"`
	FPSFilter  float64 `mapstructure:"fps_filter"`
	TextSize   int     `mapstructure:"text_size"`
	Verbose    bool    `mapstructure:"verbose"`
	Fullscreen bool    `mapstructure:"fullscreen"`
}

// Defaults returns the values used for keys missing from the file.
func Defaults() Values {
	return Values{
		Width:     1280,
		Height:    720,
		FPS:       60,
		FPSFilter: 0.1,
		TextSize:  20,
	}
}

// Option configures a loader.
type Option func(*loader)

type loader struct {
	log *slog.Logger
}

// WithLogger routes warnings to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *loader) { c.log = l }
}

func newLoader(opts []Option) loader {
	c := loader{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Settings is a settings file together with its decoded values. The
// file type follows the extension: .toml, .json or .yaml.
type Settings struct {
	Values

	v        *viper.Viper
	path     string
	readOnly bool
	log      *slog.Logger
}

// LoadSettings reads path. A missing file yields the defaults, and Save
// will create it. Environment variables prefixed OVERLAY_ override file
// values, e.g. OVERLAY_TEXT_SIZE.
func LoadSettings(path string, readOnly bool, opts ...Option) (*Settings, error) {
	c := newLoader(opts)
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetConfigFile(path)
	v.SetEnvPrefix("OVERLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat settings %s: %w", path, err)
	}

	s := &Settings{v: v, path: path, readOnly: readOnly, log: c.log}
	if err := v.Unmarshal(&s.Values); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

func setDefaults(v *viper.Viper, d Values) {
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("fps_filter", d.FPSFilter)
	v.SetDefault("text_size", d.TextSize)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("fullscreen", d.Fullscreen)
}

// Path returns the file the settings came from.
func (s *Settings) Path() string { return s.path }

// ReadOnly reports whether Save is disabled.
func (s *Settings) ReadOnly() bool { return s.readOnly }

// Save writes the current values back. For read-only settings it logs a
// warning and writes nothing.
func (s *Settings) Save() error {
	if s.readOnly {
		s.log.Warn("settings are read only, not saving", "path", s.path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	s.v.Set("width", s.Width)
	s.v.Set("height", s.Height)
	s.v.Set("fps", s.FPS)
	s.v.Set("fps_filter", s.FPSFilter)
	s.v.Set("text_size", s.TextSize)
	s.v.Set("verbose", s.Verbose)
	s.v.Set("fullscreen", s.Fullscreen)

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
