package handlers

import "errors"

// DepsCommand starts the dependency containers porta needs locally. Steps
// short-circuit: the first container that fails to start stops the sequence.
type DepsCommand struct {
	exec Executor
}

func (c *DepsCommand) Run() error {
	ok := c.exec.Run(nil, "docker", "start", "porta-mysql") &&
		c.exec.Run(nil, "docker", "start", "porta-redis") &&
		c.exec.Run(nil, "docker", "start", "porta-memcached")
	if !ok {
		return errors.New("deps aborted: container failed to start")
	}
	return nil
}
