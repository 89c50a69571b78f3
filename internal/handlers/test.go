package handlers

import "github.com/portadev/porta-cli/internal/options"

// TestCommand runs a single Rails test file. The file path is the required
// positional argument validated by the parser.
type TestCommand struct {
	store *options.Store
	exec  Executor
}

func (c *TestCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("porta_dir"), func() error {
		code, err := c.exec.Exec(railsEnv(c.store),
			"bundle", "exec", "rails", "test", c.store.String("file"))
		return exitError(code, err)
	})
}
