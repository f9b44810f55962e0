package manager

import "context"

// Manager defines the interface a package manager backend must implement.
// One implementation exists per supported backend, selected once at startup.
type Manager interface {
	// Name returns the short identifier for this manager (e.g., "apt", "pacman").
	Name() string

	// DisplayName returns a human-readable name (e.g., "APT (Debian/Ubuntu)").
	DisplayName() string

	// Binary returns the control executable probed for availability.
	Binary() string

	// IsAvailable returns true if this package manager is installed and usable.
	IsAvailable() bool

	// NeedsSudo returns true if this manager requires root privileges for
	// metadata refresh and installation.
	NeedsSudo() bool

	// Refresh updates the package metadata (repository index).
	Refresh(ctx context.Context) error

	// Exists reports whether the named package exists in the repository
	// metadata. A failing query reads as "does not exist".
	Exists(ctx context.Context, pkg string) (bool, error)

	// IsInstalled reports whether the named package is currently installed.
	IsInstalled(ctx context.Context, pkg string) (bool, error)

	// Install installs the given packages in a single batched call.
	Install(ctx context.Context, packages []string, opts InstallOpts) error

	// SearchNames returns repository package names starting with prefix.
	// Used to enumerate version-suffixed variants of a package.
	SearchNames(ctx context.Context, prefix string) ([]string, error)
}
