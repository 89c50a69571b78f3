package handlers

import (
	"errors"

	"github.com/portadev/porta-cli/internal/options"
)

// BuildCommand installs the ruby and js dependency trees of the checkout.
type BuildCommand struct {
	store *options.Store
	exec  Executor
}

func (c *BuildCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("porta_dir"), func() error {
		ok := c.exec.Run(nil, "bundle", "install") &&
			c.exec.Run(nil, "yarn", "install")
		if !ok {
			return errors.New("build aborted: step failed")
		}
		return nil
	})
}
