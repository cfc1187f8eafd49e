package app

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/asciichar/internal/converter"
)

// Config holds all the configuration an App instance needs to run.
type Config struct {
	LogLevel  string
	LogFormat string
	Charset   string
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Charset = strings.ToLower(cfg.Charset)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if _, err := converter.ParseCharset(cfg.Charset); err != nil {
		return nil, err
	}

	return &cfg, nil
}
