// Package settings loads the persisted settings document that overlays the
// built-in defaults. The file is optional: a missing file resolves to an
// empty layer.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default settings file location.
const EnvConfigPath = "PORTA_CONFIG"

type document struct {
	Settings map[string]any `yaml:"settings"`
}

// Load reads the YAML settings document at path and returns its `settings`
// mapping. Values are kept as strings or bools; scalar numbers are rendered
// as strings. A missing file is not an error.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no settings file", "path", path)
			return map[string]any{}, nil
		}
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	layer := make(map[string]any, len(doc.Settings))
	for key, raw := range doc.Settings {
		switch v := raw.(type) {
		case bool:
			layer[key] = v
		case string:
			layer[key] = ExpandPath(v)
		default:
			layer[key] = fmt.Sprint(v)
		}
	}
	slog.Debug("settings loaded", "path", path, "keys", len(layer))
	return layer, nil
}

// DefaultPath returns the settings file location: PORTA_CONFIG when set,
// otherwise config.yaml under the installation root (the parent of the
// directory holding the binary).
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandPath(p)
	}
	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "..", "config.yaml")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
