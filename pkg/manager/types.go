// Package manager provides the core abstraction over the system package
// managers mango-titus can drive (apt, dnf, pacman, zypper).
package manager

// InstallOpts contains options for package installation.
type InstallOpts struct {
	AutoConfirm bool // Automatically confirm package manager prompts
	DryRun      bool // Show what would happen without executing
}
