package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable, e.g. HELDKARP_WORKERS.
const envPrefix = "HELDKARP"

// Config holds defaults read from the environment. Command-line flags
// override each field.
type Config struct {
	Workers   int           `envconfig:"WORKERS" default:"1"`
	MaxCities int           `envconfig:"MAX_CITIES" default:"20"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"0s"` // 0 means no limit
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"text"` // text or json
}

// LoadConfig processes HELDKARP_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// newLogger builds the slog logger for level and format, writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
