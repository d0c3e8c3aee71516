package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/audible-altimeter/internal/driver"
)

const appName = "audible-altimeter"

type Config struct {
	SamplesDir     string `koanf:"samples_dir"`     // directory of .wav/.flac samples (default: ./sounds)
	Volume         int16  `koanf:"volume"`          // initial volume in dB when none is saved
	VolumeStepDB   int16  `koanf:"volume_step"`     // dB per volume key press (default: 3)
	RememberVolume *bool  `koanf:"remember_volume"` // persist volume between runs (default: true)
	LogLevel       string `koanf:"log_level"`       // "info" or "debug"
	LogFile        string `koanf:"log_file"`        // empty means the xdg state directory

	// Sound device settings
	Output OutputConfig `koanf:"output"`
}

// OutputConfig holds sound device configuration.
type OutputConfig struct {
	Rate      int `koanf:"rate"`       // device sample rate in Hz (default: 44100)
	BufferMS  int `koanf:"buffer_ms"`  // device buffer in milliseconds (default: 100)
	MaxVoices int `koanf:"max_voices"` // samples sounding at once (default: 8)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last existing file wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		SamplesDir: "sounds",
		LogLevel:   "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.SamplesDir = expandPath(cfg.SamplesDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Volume = driver.ClampVolume(cfg.Volume)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/audible-altimeter/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// VolumeStep returns the dB change per key press with the default applied.
func (c *Config) VolumeStep() int16 {
	if c.VolumeStepDB <= 0 {
		return 3
	}
	return c.VolumeStepDB
}

// ShouldRememberVolume reports whether volume changes are persisted.
func (c *Config) ShouldRememberVolume() bool {
	return c.RememberVolume == nil || *c.RememberVolume
}

// DriverOptions returns the speaker options with defaults applied.
func (c *Config) DriverOptions() driver.Options {
	o := c.Output
	if o.Rate <= 0 {
		o.Rate = 44100
	}
	if o.BufferMS <= 0 {
		o.BufferMS = 100
	}
	if o.MaxVoices <= 0 {
		o.MaxVoices = 8
	}
	return driver.Options{
		OutputRate: o.Rate,
		Buffer:     time.Duration(o.BufferMS) * time.Millisecond,
		MaxVoices:  o.MaxVoices,
	}
}
