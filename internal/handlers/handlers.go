// Package handlers declares the porta command catalogue: each command's flag
// spec, its derivation hooks, and the handler orchestrating external
// processes through the shared executor.
package handlers

import (
	"io"

	"github.com/portadev/porta-cli/internal/cli"
	"github.com/portadev/porta-cli/internal/executor"
	"github.com/portadev/porta-cli/internal/gitrepo"
	"github.com/portadev/porta-cli/internal/options"
)

// Executor is the subprocess primitive handlers compose. Implemented by
// executor.Runner; tests substitute a scripted fake.
type Executor interface {
	Run(env map[string]string, argv ...string) bool
	Exec(env map[string]string, argv ...string) (int, error)
	ScopedDir(dir string, body func() error) error
}

// Wiring carries the process-level collaborators handlers are built with.
type Wiring struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Branch      func(dir string) (string, error)
	NewExecutor func(st *options.Store) Executor
}

// DefaultWiring wires real collaborators.
func DefaultWiring(stdout, stderr io.Writer) Wiring {
	return Wiring{
		Stdout: stdout,
		Stderr: stderr,
		Branch: gitrepo.CurrentBranch,
		NewExecutor: func(st *options.Store) Executor {
			return executor.New(st, stdout, stderr)
		},
	}
}

// BuildRegistry constructs the explicit command table the dispatcher looks
// names up in.
func BuildRegistry(w Wiring) cli.Registry {
	rails := railsSpec()
	cluster := clusterSpec(w)

	reg := cli.Registry{}
	var catalogue []CommandSummary
	add := func(spec *cli.Spec, factory cli.Factory) {
		reg[spec.Name] = cli.Entry{Spec: spec, New: factory}
		catalogue = append(catalogue, CommandSummary{Name: spec.Name, Summary: spec.Summary})
	}

	add(&cli.Spec{
		Name:    "server",
		Summary: "Run the Rails development server",
		Parent:  rails,
		Flags: []cli.Flag{
			{Key: "port", Usage: "Port the server listens on"},
		},
	}, func(st *options.Store) cli.Handler {
		return &ServerCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "console",
		Summary: "Open a Rails console in the porta checkout",
		Parent:  rails,
	}, func(st *options.Store) cli.Handler {
		return &ConsoleCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:         "test",
		Summary:      "Run a single Rails test file",
		Parent:       rails,
		RequiresFile: true,
	}, func(st *options.Store) cli.Handler {
		return &TestCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "reset",
		Summary: "Recreate the development databases and search index",
		Parent:  rails,
	}, func(st *options.Store) cli.Handler {
		return &ResetCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "deps",
		Summary: "Start the dependency containers (mysql, redis, memcached)",
	}, func(st *options.Store) cli.Handler {
		return &DepsCommand{exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "build",
		Summary: "Install ruby and js dependencies in the porta checkout",
	}, func(st *options.Store) cli.Handler {
		return &BuildCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "deploy",
		Summary: "Deploy the current branch to the OpenShift dev cluster",
		Parent:  cluster,
		Flags: []cli.Flag{
			{Key: "secret_file", Usage: "File uploaded as the porta-secrets secret"},
		},
	}, func(st *options.Store) cli.Handler {
		return &DeployCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "logs",
		Summary: "Tail the deployed application logs",
		Parent:  cluster,
	}, func(st *options.Store) cli.Handler {
		return &LogsCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "portafly",
		Summary: "Run the portafly UI development server",
		Flags: []cli.Flag{
			{Key: "portafly_dir", Usage: "Directory of the portafly checkout"},
		},
		Derive: []cli.DeriveHook{derivePortaflyDir},
	}, func(st *options.Store) cli.Handler {
		return &PortaflyCommand{store: st, exec: w.NewExecutor(st)}
	})

	add(&cli.Spec{
		Name:    "help",
		Summary: "Show the command catalogue",
	}, func(st *options.Store) cli.Handler {
		return &HelpCommand{out: w.Stdout, catalogue: catalogue}
	})

	return reg
}

// exitError maps a terminal child's result to the handler error contract:
// nil on success, an ExitError adopting the child's code otherwise.
func exitError(code int, err error) error {
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}
	return &cli.ExitError{Code: code}
}
