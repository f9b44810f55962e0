package native

import (
	"context"
	"strings"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// APT implements the Manager interface for Debian/Ubuntu's APT package manager.
type APT struct {
	*BaseManager
}

// NewAPT creates a new APT manager instance.
func NewAPT() *APT {
	return &APT{
		BaseManager: NewBaseManager("apt", "APT (Debian/Ubuntu)", "apt", true),
	}
}

// Refresh updates the package index.
func (a *APT) Refresh(ctx context.Context) error {
	return a.Executor().RunSudo(ctx, a.Binary(), "update")
}

// Exists reports whether a package exists in the repository metadata.
func (a *APT) Exists(ctx context.Context, pkg string) (bool, error) {
	// apt-cache show exits non-zero for unknown packages.
	out, err := a.Executor().OutputQuiet(ctx, "apt-cache", "show", pkg)
	if err != nil {
		return false, nil
	}
	return strings.TrimSpace(out) != "", nil
}

// IsInstalled reports whether a package is installed.
func (a *APT) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	out, err := a.Executor().OutputQuiet(ctx, "dpkg-query", "-W", "-f=${Status}", pkg)
	if err != nil {
		return false, nil
	}
	return strings.Contains(out, "install ok installed"), nil
}

// Install installs packages in one batched call.
func (a *APT) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	args := []string{"install"}

	if opts.AutoConfirm {
		args = append(args, "-y")
	}

	args = append(args, packages...)

	return a.Executor().RunSudo(ctx, a.Binary(), args...)
}

// SearchNames returns repository package names starting with prefix.
func (a *APT) SearchNames(ctx context.Context, prefix string) ([]string, error) {
	out, err := a.Executor().OutputQuiet(ctx, "apt-cache", "pkgnames", prefix)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
