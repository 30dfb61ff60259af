package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/bagraph/bagrule"
	"github.com/katalvlaran/bagraph/bags"
	"github.com/katalvlaran/bagraph/config"
	"github.com/katalvlaran/bagraph/ctxlog"
	"github.com/katalvlaran/bagraph/input"
)

// main is the entrypoint for the bags command.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, resolves the rule file and prints both counts for the
// configured target to outW, followed by the containment path when a
// -from color is set. Logs go to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := config.Load(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cfg.Logger(logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	lines, err := input.ReadLines(cfg.Input)
	if err != nil {
		return err
	}
	parsed, err := bagrule.ParseLines(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Debug("rules parsed", "path", cfg.Input, "lines", len(lines))

	g, err := bags.New(parsed, bags.WithCacheSize(cfg.CacheSize), bags.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	containers, err := g.CountContainersOf(ctx, cfg.Target)
	if err != nil {
		return err
	}
	contents, err := g.CountContentsOf(ctx, cfg.Target)
	if err != nil {
		return err
	}

	var path []string
	if cfg.From != "" {
		path, err = g.ContainmentPath(ctx, cfg.From, cfg.Target)
		if err != nil && !errors.Is(err, bags.ErrNotContained) {
			return err
		}
	}

	fmt.Fprintf(outW, "containers: %d\n", containers)
	fmt.Fprintf(outW, "contents: %d\n", contents)
	if cfg.From != "" {
		if path == nil {
			fmt.Fprintln(outW, "path: none")
		} else {
			fmt.Fprintf(outW, "path: %s\n", strings.Join(path, " > "))
		}
	}
	logger.Info("query complete", "target", cfg.Target, "containers", containers, "contents", contents)

	return nil
}
