// Package config loads runtime settings from defaults, an optional config
// file and RADTUI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// EnvPrefix is the prefix of environment overrides, e.g. RADTUI_FRAME_RATE.
const EnvPrefix = "RADTUI"

// Viewport names accepted by the viewport key.
const (
	ViewportInline     = "inline"
	ViewportFullscreen = "fullscreen"
)

// Settings holds the runtime configuration.
type Settings struct {
	FrameRate    int           `mapstructure:"frame_rate"`
	RefreshRate  time.Duration `mapstructure:"refresh_rate"`
	StoreTick    time.Duration `mapstructure:"store_tick"`
	Viewport     string        `mapstructure:"viewport"`
	InlineHeight int           `mapstructure:"inline_height"`
	Log          LogSettings   `mapstructure:"log"`
}

// LogSettings configures the debug log.
type LogSettings struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		FrameRate:    60,
		RefreshRate:  250 * time.Millisecond,
		StoreTick:    time.Second,
		Viewport:     ViewportInline,
		InlineHeight: 20,
		Log:          LogSettings{Level: "debug"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("refresh_rate", d.RefreshRate)
	v.SetDefault("store_tick", d.StoreTick)
	v.SetDefault("viewport", d.Viewport)
	v.SetDefault("inline_height", d.InlineHeight)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// bindEnv binds every key to its RADTUI_* variable. Keys are bound one by
// one rather than through AutomaticEnv: RADTUI_LOG would otherwise be read
// as the whole log section and shadow log.path and log.level.
func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"frame_rate"},
		{"refresh_rate"},
		{"store_tick"},
		{"viewport"},
		{"inline_height"},
		{"log.path", EnvPrefix + "_LOG_PATH", debug.EnvPath},
		{"log.level", debug.EnvLevel},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("bind env %s: %w", b[0], err)
		}
	}
	return nil
}

// Load reads settings. An explicit path must exist; otherwise config.* in
// the user config directory is read when present. Environment variables
// override both.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "radicle-tui"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := bindEnv(v); err != nil {
		return Settings{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	switch {
	case s.FrameRate < 1 || s.FrameRate > 240:
		return fmt.Errorf("frame_rate must be between 1 and 240, got %d", s.FrameRate)
	case s.RefreshRate <= 0:
		return fmt.Errorf("refresh_rate must be positive, got %s", s.RefreshRate)
	case s.StoreTick < 0:
		return fmt.Errorf("store_tick must not be negative, got %s", s.StoreTick)
	case s.Viewport != ViewportInline && s.Viewport != ViewportFullscreen:
		return fmt.Errorf("viewport must be %q or %q, got %q", ViewportInline, ViewportFullscreen, s.Viewport)
	case s.InlineHeight < 1:
		return fmt.Errorf("inline_height must be at least 1, got %d", s.InlineHeight)
	}
	return nil
}
