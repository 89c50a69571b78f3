package handlers

import "github.com/portadev/porta-cli/internal/options"

// ServerCommand runs the Rails development server as the terminal child of
// this invocation, so signals and the exit code pass straight through.
type ServerCommand struct {
	store *options.Store
	exec  Executor
}

func (c *ServerCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("porta_dir"), func() error {
		code, err := c.exec.Exec(railsEnv(c.store),
			"bundle", "exec", "rails", "server", "-b", "0.0.0.0", "-p", c.store.String("port"))
		return exitError(code, err)
	})
}
