// Package settings loads CLI preferences from an optional config file and
// LAYOUTKIT_ environment variables.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LAYOUTKIT_LOG_LEVEL.
const EnvPrefix = "LAYOUTKIT"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds CLI preferences.
type Settings struct {
	Log      LogSettings      `mapstructure:"log"`
	Color    string           `mapstructure:"color" validate:"oneof=auto always never"`
	Viewport ViewportSettings `mapstructure:"viewport"`
	// Theme is a layout document whose theme block overrides the default
	// theme for every command.
	Theme string `mapstructure:"theme"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// ViewportSettings is the render size in terminal cells. Zero means detect
// from the terminal.
type ViewportSettings struct {
	Width  int `mapstructure:"width" validate:"min=0"`
	Height int `mapstructure:"height" validate:"min=0"`
}

// Load reads settings. An explicit path must exist; otherwise LAYOUTKIT_CONFIG
// or the user config directory is tried and a missing file is ignored.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("color", ColorAuto)
	v.SetDefault("viewport.width", 0)
	v.SetDefault("viewport.height", 0)
	v.SetDefault("theme", "")

	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "layoutkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
		default:
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	s.Color = strings.ToLower(s.Color)
	s.Log.Level = strings.ToLower(s.Log.Level)

	if err := validator.New().Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// ColorProfile resolves the color mode for output written to w.
func (s Settings) ColorProfile(w io.Writer) termenv.Profile {
	switch s.Color {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}
