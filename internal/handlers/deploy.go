package handlers

import (
	"errors"

	"github.com/portadev/porta-cli/internal/options"
)

// DeployCommand pushes the current branch to the OpenShift dev cluster:
// login, project creation, secret upload, application creation. The sequence
// short-circuits on the first failing step; there is no rollback.
type DeployCommand struct {
	store *options.Store
	exec  Executor
}

func (c *DeployCommand) Run() error {
	st := c.store
	return c.exec.ScopedDir(st.String("porta_dir"), func() error {
		ok := c.exec.Run(nil, "oc", "login", st.String("cluster_endpoint")) &&
			c.exec.Run(nil, "oc", "new-project", st.String("project")) &&
			c.exec.Run(nil, "oc", "create", "secret", "generic", "porta-secrets",
				"--from-file="+st.String("secret_file")) &&
			c.exec.Run(nil, "oc", "new-app", "-f", "openshift/porta.yml",
				"-p", "BRANCH="+st.String("branch"),
				"-p", "PORTA_IMAGE="+st.String("porta_image"),
				"-p", "WILDCARD_DOMAIN="+st.String("wildcard_domain"))
		if !ok {
			return errors.New("deploy aborted: step failed")
		}
		return nil
	})
}
