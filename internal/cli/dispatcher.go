package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/portadev/porta-cli/internal/options"
)

// Handler executes one command over a fully resolved options store.
type Handler interface {
	Run() error
}

// Factory constructs a command's handler once its options are resolved.
type Factory func(st *options.Store) Handler

// Entry pairs a command's flag spec with its handler factory.
type Entry struct {
	Spec *Spec
	New  Factory
}

// Registry maps lower-cased command names to their entries. It must contain
// a "help" entry; that is the fallback for absent or unrecognized commands.
type Registry map[string]Entry

// Dispatcher resolves argv into a command invocation and runs it.
type Dispatcher struct {
	registry Registry
	defaults map[string]any
	settings map[string]any
	stdout   io.Writer
	stderr   io.Writer
}

// NewDispatcher builds a dispatcher over an explicit registry. defaults and
// settings are the two lowest layers of every invocation's options store.
func NewDispatcher(registry Registry, defaults, settings map[string]any, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		defaults: defaults,
		settings: settings,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Dispatch runs argv[0] as a command name, case-insensitively, and returns
// the process exit code.
func (d *Dispatcher) Dispatch(args []string) int {
	name := "help"
	var rest []string
	if len(args) > 0 {
		name = strings.ToLower(args[0])
		rest = args[1:]
	}

	entry, ok := d.registry[name]
	if !ok {
		slog.Debug("unknown command, falling back to help", "command", name)
		entry = d.registry["help"]
		rest = nil
	}

	st := options.New()
	st.Merge(d.defaults, options.SourceDefault)
	st.Merge(d.settings, options.SourceSettings)

	parser := NewParser(entry.Spec, st, d.stdout)
	if err := parser.Parse(rest); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			if exit.Message != "" {
				fmt.Fprintln(d.stderr, exit.Message)
			}
			return exit.Code
		}
		fmt.Fprintf(d.stderr, "porta %s: %v\n", entry.Spec.Name, err)
		return 2
	}

	slog.Debug("dispatching", "command", entry.Spec.Name)
	if err := entry.New(st).Run(); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			if exit.Message != "" {
				fmt.Fprintln(d.stderr, exit.Message)
			}
			return exit.Code
		}
		fmt.Fprintf(d.stderr, "porta %s: %v\n", entry.Spec.Name, err)
		return 1
	}
	return 0
}
