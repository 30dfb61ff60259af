// Package config resolves the driver settings from command-line flags,
// BAGS_* environment variables and an optional .env file, in that order
// of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/bagraph/bags"
)

// Environment variables consulted for defaults.
const (
	EnvInput     = "BAGS_INPUT"
	EnvTarget    = "BAGS_TARGET"
	EnvFrom      = "BAGS_FROM"
	EnvLogLevel  = "BAGS_LOG_LEVEL"
	EnvLogFormat = "BAGS_LOG_FORMAT"
	EnvCacheSize = "BAGS_CACHE_SIZE"
)

// DefaultTarget is the color queried when none is configured.
const DefaultTarget = "shiny gold"

// Config holds everything the driver needs.
type Config struct {
	Input     string
	Target    string
	From      string // optional outer color for the containment path
	LogLevel  string
	LogFormat string
	CacheSize int
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Load parses args (without the program name). Usage and flag errors are
// written to out.
//
// It returns the resolved Config, whether the caller should exit cleanly
// (help was requested or no input was given), or an *ExitError with code 2.
func Load(args []string, out io.Writer) (*Config, bool, error) {
	_ = godotenv.Load()

	cacheDefault := bags.DefaultCacheSize
	if raw := strings.TrimSpace(os.Getenv(EnvCacheSize)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %q is not an integer", EnvCacheSize, raw)}
		}
		cacheDefault = n
	}

	fs := flag.NewFlagSet("bags", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
bags - resolve bag containment rules.

Usage:
  bags [options] [INPUT]

Arguments:
  INPUT
    Path to a file with one "<color> bags contain ..." rule per line.

Options:
`)
		fs.PrintDefaults()
	}

	input := fs.String("input", strings.TrimSpace(os.Getenv(EnvInput)), "Path to the rules file (env "+EnvInput+").")
	target := fs.String("target", firstNonEmpty(strings.TrimSpace(os.Getenv(EnvTarget)), DefaultTarget), "Color to query (env "+EnvTarget+").")
	from := fs.String("from", strings.TrimSpace(os.Getenv(EnvFrom)), "Also print a shortest chain of bags from this color down to the target (env "+EnvFrom+").")
	logLevel := fs.String("log-level", firstNonEmpty(os.Getenv(EnvLogLevel), "info"), "Logging level: debug, info, warn or error (env "+EnvLogLevel+").")
	logFormat := fs.String("log-format", firstNonEmpty(os.Getenv(EnvLogFormat), "text"), "Log output format: text or json (env "+EnvLogFormat+").")
	cacheSize := fs.Int("cache-size", cacheDefault, "Content totals memoized between queries; 0 disables (env "+EnvCacheSize+").")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *input
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		fs.Usage()
		return nil, true, nil
	}

	cfg := &Config{
		Input:     path,
		Target:    strings.TrimSpace(*target),
		From:      strings.TrimSpace(*from),
		LogLevel:  strings.ToLower(strings.TrimSpace(*logLevel)),
		LogFormat: strings.ToLower(strings.TrimSpace(*logFormat)),
		CacheSize: *cacheSize,
	}
	if err := cfg.validate(); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

func (c *Config) validate() error {
	if c.Target == "" {
		return &ExitError{Code: 2, Message: "invalid target: must not be empty"}
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if _, err := c.Level(); err != nil {
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if c.CacheSize < 0 {
		return &ExitError{Code: 2, Message: "invalid cache-size: must not be negative"}
	}

	return nil
}

// Level maps LogLevel to a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("config: unknown log level %q", c.LogLevel)
}

// Logger builds a logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
