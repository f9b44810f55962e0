// Package aur wraps Arch User Repository helper tools (yay, paru).
package aur

import (
	"context"
	"os/exec"

	"github.com/harshv5094/mango-titus/internal/executor"
	"github.com/harshv5094/mango-titus/pkg/manager"
)

// helperPreference is the fixed order helpers are probed in when no
// preferred helper is configured.
var helperPreference = []string{"yay", "paru"}

// Helper drives an installed AUR helper. Helpers invoke sudo themselves,
// so commands run unelevated.
type Helper struct {
	binary string
	exec   *executor.Executor
}

// Detect finds an available AUR helper, checking the preferred one first.
// Returns nil when no helper is installed.
func Detect(preferred string) *Helper {
	binary := detectHelper(preferred)
	if binary == "" {
		return nil
	}
	return &Helper{
		binary: binary,
		exec:   executor.New(false, false),
	}
}

func detectHelper(preferred string) string {
	if preferred != "" {
		if _, err := exec.LookPath(preferred); err == nil {
			return preferred
		}
	}
	for _, h := range helperPreference {
		if _, err := exec.LookPath(h); err == nil {
			return h
		}
	}
	return ""
}

// Name returns the helper binary name.
func (h *Helper) Name() string {
	return h.binary
}

// SetExecutor sets the executor instance.
func (h *Helper) SetExecutor(exec *executor.Executor) {
	h.exec = exec
}

// Install builds and installs packages from the AUR.
func (h *Helper) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	args := []string{"-S"}

	if opts.AutoConfirm {
		args = append(args, "--noconfirm")
	}

	args = append(args, packages...)

	return h.exec.Run(ctx, h.binary, args...)
}

// IsInstalled reports whether a package is installed.
func (h *Helper) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, err := h.exec.OutputQuiet(ctx, h.binary, "-Qi", pkg)
	return err == nil, nil
}
