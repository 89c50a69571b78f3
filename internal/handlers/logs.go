package handlers

import "github.com/portadev/porta-cli/internal/options"

// LogsCommand tails the deployed application logs; the oc child owns the
// terminal until interrupted.
type LogsCommand struct {
	store *options.Store
	exec  Executor
}

func (c *LogsCommand) Run() error {
	code, err := c.exec.Exec(nil,
		"oc", "logs", "-f", "dc/porta-app", "-n", c.store.String("project"))
	return exitError(code, err)
}
