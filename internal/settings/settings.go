package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/specialistvlad/asciichar/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Environment variable names that override settings file values.
const (
	EnvLogLevel  = "ASCIICHAR_LOG_LEVEL"
	EnvLogFormat = "ASCIICHAR_LOG_FORMAT"
	EnvCharset   = "ASCIICHAR_CHARSET"
)

// DefaultDotEnvPath is read when no .env path is given explicitly.
const DefaultDotEnvPath = ".env"

// Settings are the tunables shared by the settings file, the environment
// and the command line.
type Settings struct {
	LogLevel  string
	LogFormat string
	Charset   string
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() *Settings {
	return &Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Charset:   "unicode",
	}
}

// fileRoot mirrors the attributes accepted in a settings file.
type fileRoot struct {
	LogLevel  *string  `hcl:"log_level,optional"`
	LogFormat *string  `hcl:"log_format,optional"`
	Charset   *string  `hcl:"charset,optional"`
	Remain    hcl.Body `hcl:",remain"`
}

// Load returns the defaults overlaid with the settings file at path. An
// empty path skips the file. Attribute expressions may reference the
// process environment as env.NAME.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := Defaults()
	if path == "" {
		logger.Debug("No settings file given, using defaults.")
		return s, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := decode(s, src, path); err != nil {
		return nil, err
	}
	logger.Debug("Settings file loaded.", "path", path, "settings", *s)
	return s, nil
}

func decode(s *Settings, src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	// Anything not consumed above ends up in Remain; reject it so typos surface.
	attrs, diags := root.Remain.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("settings file %s: %w", filename, diags)
	}
	if len(attrs) > 0 {
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		return fmt.Errorf("settings file %s: unsupported attributes: %s", filename, strings.Join(names, ", "))
	}

	overlay(&s.LogLevel, root.LogLevel)
	overlay(&s.LogFormat, root.LogFormat)
	overlay(&s.Charset, root.Charset)
	return nil
}

// evalContext exposes the process environment to settings expressions.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && name != "" {
			env[name] = cty.StringVal(value)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

func overlay(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// ApplyEnv overlays the ASCIICHAR_* environment variables that are set.
func ApplyEnv(s *Settings) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		s.LogFormat = v
	}
	if v := os.Getenv(EnvCharset); v != "" {
		s.Charset = v
	}
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is only an
// error when required is true.
func LoadDotEnv(ctx context.Context, path string, required bool) error {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		path = DefaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			logger.Debug("Skipping .env file.", "path", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	logger.Debug("Loaded .env file.", "path", path)
	return nil
}
