package handlers

import "github.com/portadev/porta-cli/internal/options"

// railsEnv builds the environment injected into every Rails invocation.
func railsEnv(st *options.Store) map[string]string {
	env := map[string]string{
		"RAILS_ENV": st.String("rails_env"),
	}
	if url := databaseURL(st.String("database")); url != "" {
		env["DATABASE_URL"] = url
	}
	return env
}

func databaseURL(database string) string {
	switch database {
	case "postgresql":
		return "postgresql://postgres:@localhost:5432/porta"
	case "mysql":
		return "mysql2://root:@localhost:3306/porta"
	default:
		return ""
	}
}
