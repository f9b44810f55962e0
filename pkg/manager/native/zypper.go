package native

import (
	"context"
	"strings"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// Zypper implements the Manager interface for openSUSE's zypper package manager.
type Zypper struct {
	*BaseManager
}

// NewZypper creates a new Zypper manager instance.
func NewZypper() *Zypper {
	return &Zypper{
		BaseManager: NewBaseManager("zypper", "Zypper (openSUSE)", "zypper", true),
	}
}

// Refresh updates the repository metadata.
func (z *Zypper) Refresh(ctx context.Context) error {
	return z.Executor().RunSudo(ctx, z.Binary(), "--non-interactive", "refresh")
}

// Exists reports whether a package exists in the repositories.
func (z *Zypper) Exists(ctx context.Context, pkg string) (bool, error) {
	// zypper search exits with 104 when nothing matches.
	_, err := z.Executor().OutputQuiet(ctx, z.Binary(), "--non-interactive", "search", "--match-exact", "--type", "package", pkg)
	return err == nil, nil
}

// IsInstalled reports whether a package is installed.
func (z *Zypper) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, err := z.Executor().OutputQuiet(ctx, "rpm", "-q", pkg)
	return err == nil, nil
}

// Install installs packages in one batched call.
func (z *Zypper) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	args := []string{"--non-interactive", "install"}
	args = append(args, packages...)

	return z.Executor().RunSudo(ctx, z.Binary(), args...)
}

// SearchNames returns repository package names starting with prefix.
func (z *Zypper) SearchNames(ctx context.Context, prefix string) ([]string, error) {
	out, err := z.Executor().OutputQuiet(ctx, z.Binary(), "--non-interactive", "--quiet", "search", "--type", "package", prefix+"*")
	if err != nil {
		return nil, nil
	}
	return parseZypperNames(out, prefix), nil
}

// parseZypperNames extracts package names from zypper's tabular search output.
// Lines look like "  | wlroots0.18 | package | ...".
func parseZypperNames(output, prefix string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[1])
		if name == "" || name == "Name" || !strings.HasPrefix(name, prefix) {
			continue
		}
		names = append(names, name)
	}
	return names
}
