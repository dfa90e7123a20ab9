// Package config loads revsynth settings from a YAML file with
// environment variable overrides.
package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration.
type Config struct {
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
	SampleRate   int     `yaml:"sample_rate"`
	BufferMs     int     `yaml:"buffer_ms"`
}

type TelemetryConfig struct {
	Source string `yaml:"source"` // "demo", "serial" or "websocket"
	Port   string `yaml:"port"`   // serial device path
	Baud   int    `yaml:"baud"`
	URL    string `yaml:"url"` // websocket endpoint
	PollHz int    `yaml:"poll_hz"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SampleRate:   44100,
			BufferMs:     50,
		},
		Telemetry: TelemetryConfig{
			Source: "demo",
			Port:   "/dev/ttyUSB0",
			Baud:   115200,
			URL:    "ws://127.0.0.1:8080/telemetry",
			PollHz: 60,
		},
	}
}

// Load reads YAML from path over the defaults, then applies environment
// overrides. A missing or broken file falls back to defaults.
func Load(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[config] no config at %s, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[config] error parsing %s: %v, using defaults", path, err)
		cfg = Default()
	} else {
		log.Printf("[config] loaded from %s", path)
	}

	cfg.applyEnvOverrides()
	cfg.sanitize()
	return cfg
}

// applyEnvOverrides reads environment variables over the file values.
// Supported: REVSYNTH_AUDIO_ENABLED, REVSYNTH_MASTER_VOLUME (0-100),
// REVSYNTH_SAMPLE_RATE, REVSYNTH_TELEMETRY_SOURCE, REVSYNTH_TELEMETRY_PORT,
// REVSYNTH_TELEMETRY_BAUD, REVSYNTH_TELEMETRY_URL, REVSYNTH_POLL_HZ.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("REVSYNTH_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := os.Getenv("REVSYNTH_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(n) / 100.0
		}
	}
	if v := os.Getenv("REVSYNTH_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Audio.SampleRate = n
		}
	}
	if v := os.Getenv("REVSYNTH_TELEMETRY_SOURCE"); v != "" {
		c.Telemetry.Source = v
	}
	if v := os.Getenv("REVSYNTH_TELEMETRY_PORT"); v != "" {
		c.Telemetry.Port = v
	}
	if v := os.Getenv("REVSYNTH_TELEMETRY_BAUD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Telemetry.Baud = n
		}
	}
	if v := os.Getenv("REVSYNTH_TELEMETRY_URL"); v != "" {
		c.Telemetry.URL = v
	}
	if v := os.Getenv("REVSYNTH_POLL_HZ"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Telemetry.PollHz = n
		}
	}
}

func (c *Config) sanitize() {
	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.BufferMs <= 0 {
		c.Audio.BufferMs = 50
	}
	if c.Telemetry.PollHz <= 0 {
		c.Telemetry.PollHz = 60
	}
}
