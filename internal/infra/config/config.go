// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/playdeck/playdeck/internal/domain/track"
)

// Config represents the application configuration.
type Config struct {
	Player   PlayerConfig  `yaml:"player"`
	Playlist []TrackConfig `yaml:"playlist" validate:"required,min=1,dive"`
	Logging  LoggingConfig `yaml:"logging"`
}

// PlayerConfig represents player tuning.
type PlayerConfig struct {
	InitialVolume float64 `yaml:"initial_volume" default:"0.2" validate:"gte=0,lte=1"`
	VolumeStep    float64 `yaml:"volume_step" default:"0.1" validate:"gt=0,lte=1"`
}

// TrackConfig represents one playlist entry.
type TrackConfig struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title" validate:"required"`
	Artist      string `yaml:"artist"`
	DurationSec int    `yaml:"duration_sec" validate:"gte=0"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Output string `yaml:"output" default:"stdout"`
	Level  string `yaml:"level" default:"info"`
	File   string `yaml:"file"`
}

// Load loads configuration from a YAML file. Environment variables
// take precedence over file values for logging fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file
// is given: the five-track demo playlist with stock player settings.
func Default() (*Config, error) {
	cfg := Config{
		Playlist: []TrackConfig{
			{ID: "first", Title: "first"},
			{ID: "second", Title: "second"},
			{ID: "third", Title: "third"},
			{ID: "fourth", Title: "fourth"},
			{ID: "fifth", Title: "fifth"},
		},
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("PLAYDECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PLAYDECK_LOG_FILE"); v != "" {
		c.Logging.Output = v
		c.Logging.File = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// Tracks converts the playlist entries to domain tracks. Entries
// without an explicit ID fall back to their title.
func (c *Config) Tracks() []track.Track {
	tracks := make([]track.Track, len(c.Playlist))
	for i, entry := range c.Playlist {
		id := entry.ID
		if id == "" {
			id = entry.Title
		}
		tracks[i] = track.Track{
			ID:       id,
			Title:    entry.Title,
			Artist:   entry.Artist,
			Duration: time.Duration(entry.DurationSec) * time.Second,
		}
	}
	return tracks
}
