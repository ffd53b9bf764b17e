// Package config defines the tracker configuration and its loader.
//
// Conventions:
// - New returns a Config filled with defaults.
// - Load layers defaults, .env, an optional YAML file and FTRACKER_ env vars.
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"github.com/okian/ftracker/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Serve starts the HTTP API instead of printing the demo reports.
	Serve bool `koanf:"serve"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// RedocBundle is a path to redoc.standalone.js served with the API docs.
	// Empty loads ReDoc from its CDN.
	RedocBundle string `koanf:"redoc_bundle"`

	// Packages are the sensor readings processed in demo mode, in order.
	Packages []model.Package `koanf:"packages"`
}

// New creates a Config with defaults. The default packages are the
// demonstration readings for swimming, running and walking.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Serve:     false,
		Addr:      ":9080",
		Packages:  DefaultPackages(),
	}
}

// DefaultPackages returns the demonstration readings.
func DefaultPackages() []model.Package {
	return []model.Package{
		{WorkoutType: "SWM", Data: []float64{420, 4, 20, 42, 4}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
