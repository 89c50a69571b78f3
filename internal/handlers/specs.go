package handlers

import (
	"path/filepath"

	"github.com/portadev/porta-cli/internal/cli"
	"github.com/portadev/porta-cli/internal/options"
)

// railsSpec is the parent flag set for commands that run the Rails
// application inside the porta checkout.
func railsSpec() *cli.Spec {
	return &cli.Spec{
		Name: "rails",
		Flags: []cli.Flag{
			{Key: "rails_env", Usage: "Rails environment"},
			{Key: "database", Usage: "Database flavor (postgresql or mysql)"},
		},
	}
}

// clusterSpec is the parent flag set for commands against the OpenShift dev
// cluster. Its derivation hooks run in this fixed order, each via
// SetIfAbsent so explicit flags are never overwritten.
func clusterSpec(w Wiring) *cli.Spec {
	return &cli.Spec{
		Name: "cluster",
		Flags: []cli.Flag{
			{Key: "cluster_domain", Usage: "Base domain of the OpenShift dev cluster"},
			{Key: "project", Usage: "OpenShift project name"},
			{Key: "branch", Usage: "Branch of the porta repository to deploy"},
		},
		Derive: []cli.DeriveHook{
			deriveBranch(w),
			deriveProject,
			derivePortaImage,
			deriveClusterEndpoint,
			deriveWildcardDomain,
		},
	}
}

// deriveBranch seeds the branch option from the checkout's current branch,
// only when the user supplied none.
func deriveBranch(w Wiring) cli.DeriveHook {
	return func(st *options.Store) error {
		if st.Has("branch") {
			return nil
		}
		branch, err := w.Branch(st.String("porta_dir"))
		if err != nil {
			return err
		}
		st.SetIfAbsent("branch", branch)
		return nil
	}
}

func deriveProject(st *options.Store) error {
	if branch := st.String("branch"); branch != "" {
		st.SetIfAbsent("project", sanitizeProject(branch))
	}
	return nil
}

func derivePortaImage(st *options.Store) error {
	if project := st.String("project"); project != "" {
		st.SetIfAbsent("porta_image", portaImage(project))
	}
	return nil
}

func deriveClusterEndpoint(st *options.Store) error {
	if domain := st.String("cluster_domain"); domain != "" {
		st.SetIfAbsent("cluster_endpoint", clusterEndpoint(domain))
	}
	return nil
}

func deriveWildcardDomain(st *options.Store) error {
	project, domain := st.String("project"), st.String("cluster_domain")
	if project != "" && domain != "" {
		st.SetIfAbsent("wildcard_domain", wildcardDomain(project, domain))
	}
	return nil
}

func derivePortaflyDir(st *options.Store) error {
	st.SetIfAbsent("portafly_dir", filepath.Join(st.String("porta_dir"), "portafly"))
	return nil
}
