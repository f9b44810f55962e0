package config

import (
	"os"
	"path/filepath"
)

const (
	appName     = "mango-titus"
	configFile  = "config.toml"
	journalFile = "journal.db"
)

// userConfigDir returns the per-user configuration root, respecting
// XDG_CONFIG_HOME.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".config")
}

// ConfigDir returns the mango-titus configuration directory.
func ConfigDir() string {
	return filepath.Join(userConfigDir(), appName)
}

// DataDir returns the mango-titus data directory, respecting XDG_DATA_HOME.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".local", "share", appName)
}

// ConfigPath returns the full path to the mango-titus config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}

// JournalPath returns the full path to the install journal database.
func JournalPath() string {
	return filepath.Join(DataDir(), journalFile)
}

// MangoConfigPath returns the destination path for the deployed compositor
// configuration.
func MangoConfigPath() string {
	return filepath.Join(userConfigDir(), "mango", "config.conf")
}

// NoctaliaDir returns the fixed destination directory for manual and
// source installs of the Noctalia shell.
func NoctaliaDir() string {
	return filepath.Join(userConfigDir(), "quickshell", "noctalia-shell")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0755)
}
