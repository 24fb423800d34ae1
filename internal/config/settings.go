// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional settings file.
const ConfigName = "arena"

// WindowSettings controls the host window.
type WindowSettings struct {
	Scale float64 `mapstructure:"scale"`
	Title string  `mapstructure:"title"`
}

// AudioSettings controls the synthesizer.
type AudioSettings struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
}

// AssetSettings points at optional sprite files.
type AssetSettings struct {
	SpritesDir string `mapstructure:"spritesDir"`
}

// Settings are the host options read at start-up. Gameplay tuning is
// fixed in code and is not part of it.
type Settings struct {
	LogLevel    string         `mapstructure:"logLevel"`
	LogFile     string         `mapstructure:"logFile"`
	Seed        int64          `mapstructure:"seed"`
	StartInMenu bool           `mapstructure:"startInMenu"`
	Window      WindowSettings `mapstructure:"window"`
	Audio       AudioSettings  `mapstructure:"audio"`
	Assets      AssetSettings  `mapstructure:"assets"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("seed", 0)
	v.SetDefault("startInMenu", true)

	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.title", "Zombie Arena")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 1.0)
	v.SetDefault("audio.sampleRate", 44100)

	v.SetDefault("assets.spritesDir", "assets/sprites")
}

// Load reads settings from arena.{json,yaml,toml} in any of dirs. A missing
// file is fine and yields the defaults; a malformed one is an error.
// Environment variables prefixed with ARENA_ override both.
func Load(dirs ...string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	return &s, nil
}
