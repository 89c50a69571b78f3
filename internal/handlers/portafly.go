package handlers

import (
	"errors"

	"github.com/portadev/porta-cli/internal/options"
)

// PortaflyCommand runs the portafly UI dev server inside its checkout:
// install dependencies, then hand the terminal to yarn start.
type PortaflyCommand struct {
	store *options.Store
	exec  Executor
}

func (c *PortaflyCommand) Run() error {
	return c.exec.ScopedDir(c.store.String("portafly_dir"), func() error {
		if !c.exec.Run(nil, "yarn", "install") {
			return errors.New("portafly aborted: yarn install failed")
		}
		code, err := c.exec.Exec(nil, "yarn", "start")
		return exitError(code, err)
	})
}
