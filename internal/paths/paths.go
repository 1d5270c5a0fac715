package paths

import (
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory.
const AppName = "sentrycli"

func DefaultConfigDir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, AppName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(".", AppName)
}

func DefaultHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func DefaultConfigPath() string { return filepath.Join(DefaultConfigDir(), "config.json") }
func DefaultRCPath() string     { return filepath.Join(DefaultHomeDir(), ".sentryclirc") }
