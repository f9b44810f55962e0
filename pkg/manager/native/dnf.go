package native

import (
	"context"
	"strings"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// DNF implements the Manager interface for Fedora's DNF package manager.
type DNF struct {
	*BaseManager
}

// NewDNF creates a new DNF manager instance.
func NewDNF() *DNF {
	return &DNF{
		BaseManager: NewBaseManager("dnf", "DNF (Fedora/RHEL)", "dnf", true),
	}
}

// Refresh updates the package metadata cache.
func (d *DNF) Refresh(ctx context.Context) error {
	return d.Executor().RunSudo(ctx, d.Binary(), "makecache")
}

// Exists reports whether a package exists in the repository metadata.
func (d *DNF) Exists(ctx context.Context, pkg string) (bool, error) {
	out, err := d.Executor().OutputQuiet(ctx, d.Binary(), "--cacheonly", "info", pkg)
	if err != nil {
		return false, nil
	}
	return strings.TrimSpace(out) != "", nil
}

// IsInstalled reports whether a package is installed.
func (d *DNF) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, err := d.Executor().OutputQuiet(ctx, "rpm", "-q", pkg)
	return err == nil, nil
}

// Install installs packages in one batched call.
func (d *DNF) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	args := []string{"install"}

	if opts.AutoConfirm {
		args = append(args, "-y")
	}

	args = append(args, packages...)

	return d.Executor().RunSudo(ctx, d.Binary(), args...)
}

// SearchNames returns repository package names starting with prefix.
func (d *DNF) SearchNames(ctx context.Context, prefix string) ([]string, error) {
	out, err := d.Executor().OutputQuiet(ctx, d.Binary(), "repoquery", "--qf", "%{name}", prefix+"*")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		names = append(names, line)
	}
	return names, nil
}
