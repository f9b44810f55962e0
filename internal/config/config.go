// Package config handles mango-titus configuration loading and paths.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables overriding the source-build URLs. An unset variable
// leaves the config file value (empty by default) in place; an empty URL
// disables the corresponding source-build fallback.
const (
	EnvMangoRepo    = "MANGOWC_REPO"
	EnvNoctaliaRepo = "NOCTALIA_REPO"
)

// Config represents the complete mango-titus configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Sources SourcesConfig `toml:"sources"`
	AUR     AURConfig     `toml:"aur"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// SourcesConfig contains the install sources for the compositor and shell.
type SourcesConfig struct {
	// MangoRepo is the git URL used to build the compositor from source.
	// Empty disables the source-build fallback.
	MangoRepo string `toml:"mango_repo"`

	// NoctaliaRepo is the git URL used to install the shell from source.
	// Empty disables the source-install fallback.
	NoctaliaRepo string `toml:"noctalia_repo"`

	// NoctaliaRelease is the pre-built release archive used as the shell's
	// terminal fallback.
	NoctaliaRelease string `toml:"noctalia_release"`
}

// AURConfig contains AUR helper settings. Pacman only.
type AURConfig struct {
	// Helper specifies which AUR helper to prefer (yay, paru).
	Helper string `toml:"helper"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
			DryRun:      false,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Sources: SourcesConfig{
			NoctaliaRelease: "https://github.com/noctalia-dev/noctalia-shell/releases/latest/download/noctalia-shell.tar.gz",
		},
		AUR: AURConfig{
			Helper: "yay",
		},
	}
}

// Load loads the configuration from the default path and applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies environment variable overrides for the source URLs.
func (c *Config) applyEnv() {
	if repo, ok := os.LookupEnv(EnvMangoRepo); ok {
		c.Sources.MangoRepo = repo
	}
	if repo, ok := os.LookupEnv(EnvNoctaliaRepo); ok {
		c.Sources.NoctaliaRepo = repo
	}
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
