package handlers

import (
	"errors"

	"github.com/portadev/porta-cli/internal/options"
)

// ResetCommand recreates the development databases and the search index,
// stopping at the first failing step.
type ResetCommand struct {
	store *options.Store
	exec  Executor
}

func (c *ResetCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("porta_dir"), func() error {
		env := railsEnv(c.store)
		ok := c.exec.Run(env, "bundle", "exec", "rails", "db:drop", "db:create", "db:setup") &&
			c.exec.Run(env, "bundle", "exec", "rails", "searchd:reindex")
		if !ok {
			return errors.New("reset aborted: step failed")
		}
		return nil
	})
}
