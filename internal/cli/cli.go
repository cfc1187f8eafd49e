package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/asciichar/internal/app"
	"github.com/specialistvlad/asciichar/internal/ctxlog"
	"github.com/specialistvlad/asciichar/internal/settings"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values are resolved as defaults < settings file < environment < flags.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	ctx := ctxlog.WithLogger(context.Background(), slog.Default())
	slog.Debug("CLI parser started.")

	flagSet := flag.NewFlagSet("asciichar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
asciichar - Converts four code point values into characters.

Reads one line of four whitespace-separated integers from standard input and
prints each value next to its character.

Usage:
  asciichar [options]

Environment:
  ASCIICHAR_LOG_LEVEL, ASCIICHAR_LOG_FORMAT, ASCIICHAR_CHARSET

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	cFlag := flagSet.String("c", "", "Path to an HCL settings file (shorthand).")
	envFileFlag := flagSet.String("env-file", "", "Path to a .env file. Defaults to ./.env when present.")
	charsetFlag := flagSet.String("charset", "", "Accepted code points. Options: 'unicode', 'latin1', 'ascii'. (default \"unicode\")")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"info\")")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "unexpected arguments: " + strings.Join(flagSet.Args(), " ")}
	}
	slog.Debug("Arguments parsed successfully.")

	if err := settings.LoadDotEnv(ctx, *envFileFlag, *envFileFlag != ""); err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	s, err := settings.Load(ctx, configPath)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	settings.ApplyEnv(s)

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["charset"] {
		s.Charset = *charsetFlag
	}
	if set["log-format"] {
		s.LogFormat = *logFormatFlag
	}
	if set["log-level"] {
		s.LogLevel = *logLevelFlag
	}

	config, err := app.NewConfig(app.Config{
		LogLevel:  s.LogLevel,
		LogFormat: s.LogFormat,
		Charset:   s.Charset,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
