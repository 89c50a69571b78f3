package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/portadev/porta-cli/internal/cli"
	"github.com/portadev/porta-cli/internal/handlers"
	"github.com/portadev/porta-cli/internal/options"
	"github.com/portadev/porta-cli/internal/settings"
)

func main() {
	args := os.Args[1:]
	slog.SetDefault(newLogger(os.Stderr, logLevel(args)))

	layer, err := settings.Load(settings.DefaultPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	wiring := handlers.DefaultWiring(os.Stdout, os.Stderr)
	dispatcher := cli.NewDispatcher(
		handlers.BuildRegistry(wiring),
		options.Defaults(),
		layer,
		os.Stdout,
		os.Stderr,
	)
	os.Exit(dispatcher.Dispatch(args))
}

// logLevel pre-scans the raw arguments: debug logging has to cover settings
// loading and dispatch, which happen before flag parsing resolves --verbose.
// Both --verbose and --verbose=<bool> forms count.
func logLevel(args []string) slog.Level {
	for _, a := range args {
		if a == "--verbose" {
			return slog.LevelDebug
		}
		if v, ok := strings.CutPrefix(a, "--verbose="); ok {
			if b, err := strconv.ParseBool(v); err == nil && b {
				return slog.LevelDebug
			}
		}
	}
	return slog.LevelInfo
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
