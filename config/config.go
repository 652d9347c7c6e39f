// Package config handles the emulator configuration and logger setup.
package config

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

// Configuration keys, they double as flag names and as keys in the config file.
const (
	KeyClock         = "clock"
	KeyScale         = "scale"
	KeySeed          = "seed"
	KeyVolume        = "volume"
	KeyTone          = "tone"
	KeyBeep          = "beep"
	KeyTrace         = "trace"
	KeyHaltOnUnknown = "halt-on-unknown"
	KeyDebug         = "debug"
	KeyQuiet         = "quiet"
)

const (
	minClock = 1
	maxClock = 10000
	minScale = 1
	maxScale = 40
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains all settings of the emulator.
type Config struct {
	Clock         int     `mapstructure:"clock"`           // instructions per second
	Scale         int     `mapstructure:"scale"`           // window pixels per display pixel
	Seed          int64   `mapstructure:"seed"`            // 0 seeds from the current time
	Volume        float64 `mapstructure:"volume"`          // buzzer volume in powers of 2
	Tone          float64 `mapstructure:"tone"`            // buzzer frequency in Hz
	Beep          string  `mapstructure:"beep"`            // optional mp3 file for the buzzer
	Trace         bool    `mapstructure:"trace"`           // log every executed instruction
	HaltOnUnknown bool    `mapstructure:"halt-on-unknown"` // stop on undecodable opcodes
	Debug         bool    `mapstructure:"debug"`
	Quiet         bool    `mapstructure:"quiet"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyClock, 700)
	v.SetDefault(KeyScale, 10)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyVolume, -3.0)
	v.SetDefault(KeyTone, 440.0)
	v.SetDefault(KeyBeep, "")
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyHaltOnUnknown, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyQuiet, false)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all values are in their allowed ranges.
func (c Config) Validate() error {
	if c.Clock < minClock || c.Clock > maxClock {
		return fmt.Errorf("%w: clock %d Hz is not in range %d-%d", ErrInvalidConfig, c.Clock, minClock, maxClock)
	}
	if c.Scale < minScale || c.Scale > maxScale {
		return fmt.Errorf("%w: scale %d is not in range %d-%d", ErrInvalidConfig, c.Scale, minScale, maxScale)
	}
	if c.Beep == "" && c.Tone <= 0 {
		return fmt.Errorf("%w: tone %.0f Hz has to be positive", ErrInvalidConfig, c.Tone)
	}
	return nil
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
