package handlers

import "github.com/portadev/porta-cli/internal/options"

// ConsoleCommand opens a Rails console in the porta checkout.
type ConsoleCommand struct {
	store *options.Store
	exec  Executor
}

func (c *ConsoleCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("porta_dir"), func() error {
		code, err := c.exec.Exec(railsEnv(c.store), "bundle", "exec", "rails", "console")
		return exitError(code, err)
	})
}
