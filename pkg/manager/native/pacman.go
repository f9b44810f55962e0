package native

import (
	"context"
	"strings"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// Pacman implements the Manager interface for Arch Linux's pacman package manager.
type Pacman struct {
	*BaseManager
}

// NewPacman creates a new Pacman manager instance.
func NewPacman() *Pacman {
	return &Pacman{
		BaseManager: NewBaseManager("pacman", "Pacman (Arch Linux)", "pacman", true),
	}
}

// Refresh synchronizes the package databases.
func (p *Pacman) Refresh(ctx context.Context) error {
	return p.Executor().RunSudo(ctx, p.Binary(), "-Sy")
}

// Exists reports whether a package exists in the sync databases.
func (p *Pacman) Exists(ctx context.Context, pkg string) (bool, error) {
	_, err := p.Executor().OutputQuiet(ctx, p.Binary(), "-Si", pkg)
	return err == nil, nil
}

// IsInstalled reports whether a package is installed.
func (p *Pacman) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, err := p.Executor().OutputQuiet(ctx, p.Binary(), "-Qi", pkg)
	return err == nil, nil
}

// Install installs packages in one batched call.
func (p *Pacman) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	args := []string{"-S", "--needed"}

	if opts.AutoConfirm {
		args = append(args, "--noconfirm")
	}

	args = append(args, packages...)

	return p.Executor().RunSudo(ctx, p.Binary(), args...)
}

// SearchNames returns sync database package names starting with prefix.
func (p *Pacman) SearchNames(ctx context.Context, prefix string) ([]string, error) {
	out, err := p.Executor().OutputQuiet(ctx, p.Binary(), "-Ssq", "^"+prefix)
	if err != nil {
		// pacman exits non-zero when nothing matches.
		return nil, nil
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
