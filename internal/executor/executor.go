// Package executor is the shared primitive every command handler uses to run
// external processes. It honors the global explain mode (print, don't run)
// and verbose mode (print, then run).
package executor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/portadev/porta-cli/internal/options"
)

// Runner spawns external commands for one invocation.
type Runner struct {
	Explain bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
}

// New builds a Runner from the invocation's resolved options.
func New(st *options.Store, stdout, stderr io.Writer) *Runner {
	return &Runner{
		Explain: st.Bool("explain"),
		Verbose: st.Bool("verbose"),
		Stdout:  stdout,
		Stderr:  stderr,
		Stdin:   os.Stdin,
	}
}

// Run executes argv synchronously in the current working directory with env
// injected over the inherited environment. It reports whether the child
// exited successfully; in explain mode nothing is spawned and Run reports
// true. The command is echoed with a [CMD] prefix when verbose or explain
// mode is active.
func (r *Runner) Run(env map[string]string, argv ...string) bool {
	r.echo(env, argv)
	if r.Explain {
		return true
	}
	cmd := r.command(env, argv)
	if err := cmd.Run(); err != nil {
		slog.Debug("command failed", "argv", argv[0], "err", err)
		return false
	}
	return true
}

// Exec runs the terminal step of an interactive or long-running command: the
// child inherits stdin/stdout/stderr and its exit code is returned for this
// process to adopt. A child that cannot be started at all is an error. In
// explain mode nothing is spawned and the code is 0.
func (r *Runner) Exec(env map[string]string, argv ...string) (int, error) {
	r.echo(env, argv)
	if r.Explain {
		return 0, nil
	}
	cmd := r.command(env, argv)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("exec %s: %w", argv[0], err)
}

// ScopedDir runs body with the working directory changed to dir, echoing it
// with a [DIR] prefix, and restores the previous directory on every exit
// path. In explain mode the directory change is skipped so would-be commands
// still echo even when dir does not exist yet.
func (r *Runner) ScopedDir(dir string, body func() error) error {
	if r.Verbose || r.Explain {
		fmt.Fprintln(r.Stdout, "[DIR] "+dir)
	}
	if r.Explain {
		return body()
	}
	prev, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	defer os.Chdir(prev)
	return body()
}

func (r *Runner) command(env map[string]string, argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), envPairs(env)...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin
	return cmd
}

func (r *Runner) echo(env map[string]string, argv []string) {
	if !r.Verbose && !r.Explain {
		return
	}
	parts := append(envPairs(env), argv...)
	fmt.Fprintln(r.Stdout, "[CMD] "+strings.Join(parts, " "))
}

// envPairs renders env as KEY=VALUE assignments in sorted key order, so the
// diagnostic echo is deterministic.
func envPairs(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+env[k])
	}
	return pairs
}
