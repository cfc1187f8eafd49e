package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/asciichar/internal/converter"
	"github.com/specialistvlad/asciichar/internal/ctxlog"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	converter *converter.Converter
}

// NewApp builds an App that prints to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	charset, err := converter.ParseCharset(cfg.Charset)
	if err != nil {
		return nil, fmt.Errorf("failed to configure converter: %w", err)
	}
	logger.Debug("App configured.", "charset", charset, "log_level", cfg.LogLevel, "log_format", cfg.LogFormat)

	return &App{
		outW:      outW,
		logger:    logger,
		converter: converter.New(charset),
	}, nil
}

// Run reads one line from in and prints the converted values.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	if err := a.converter.Run(ctx, in, a.outW); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	a.logger.Debug("App.Run finished.")
	return nil
}
