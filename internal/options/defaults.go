package options

import (
	"os"
	"path/filepath"
)

// Defaults returns the built-in defaults table. It is constructed once at
// startup and passed explicitly to the dispatcher; nothing mutates it.
func Defaults() map[string]any {
	home, _ := os.UserHomeDir()
	return map[string]any{
		"porta_dir": filepath.Join(home, "workspace", "porta"),
		"rails_env": "development",
		"database":  "postgresql",
		"port":      "3000",
		"explain":   false,
		"verbose":   false,
	}
}
