package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names an explicit configuration file.
const EnvConfigPath = "TEXTFINDER_CONFIG"

// ConfigFileNames are the file names FindConfigFile looks for, in order.
var ConfigFileNames = []string{".textfinder.yaml", ".textfinder.yml", ".textfinder.toml"}

// FindConfigFile returns the configuration file to use.
// Priority order:
//  1. TEXTFINDER_CONFIG environment variable (if set)
//  2. The first ConfigFileNames entry found in start or one of its parents
//
// Returns "" when there is none.
func FindConfigFile(start string) string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return ""
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(current, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return ""
		}
		current = parent
	}
}
