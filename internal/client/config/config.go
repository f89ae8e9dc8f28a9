// Package config holds runtime settings of the travel story CLI.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	serverconfig "github.com/dtroode/travelstory-server/internal/config"
)

// Config holds client settings. Environment variables are read first,
// command-line flags take precedence.
type Config struct {
	ServerURL      string        `env:"SERVER_URL" envDefault:"http://localhost:5000"`
	Debounce       time.Duration `env:"DEBOUNCE" envDefault:"300ms"`
	MinQueryLength int           `env:"MIN_QUERY" envDefault:"2"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	// LogLevel is a log/slog level; warnings and errors only by default.
	LogLevel int `env:"LOG_LEVEL" envDefault:"4"`
}

// LoadConfig builds a Config from .env, TRAVELSTORY_* variables and args.
func LoadConfig(args []string) (*Config, error) {
	if err := serverconfig.LoadDotenv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TRAVELSTORY_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.MinQueryLength < 1 {
		cfg.MinQueryLength = 1
	}

	return cfg, nil
}

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("travelstory", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "travel story API base URL")
	fs.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay before a typed search query is sent")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "timeout of a single API request")

	return fs.Parse(args)
}
