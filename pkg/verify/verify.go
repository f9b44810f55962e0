// Package verify runs the post-install checks.
package verify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/pkg/installer"
	"github.com/harshv5094/mango-titus/pkg/manager"
)

// Report aggregates the verification results. Every check runs regardless
// of earlier failures so the report is complete.
type Report struct {
	Failures []string
	Hints    []string
}

// Passed reports whether every check succeeded.
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes all post-install checks. mgr may be nil when no package
// manager was detected; the package-query check is skipped in that case.
func Run(ctx context.Context, mgr manager.Manager) *Report {
	report := &Report{}

	checkCompositor(report)
	checkConfig(report)
	checkShell(ctx, mgr, report)

	return report
}

// checkCompositor requires the compositor binary under one of its accepted
// names.
func checkCompositor(report *Report) {
	for _, bin := range installer.CompositorBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return
		}
	}
	report.Failures = append(report.Failures,
		fmt.Sprintf("compositor binary not found (looked for %s)", strings.Join(installer.CompositorBinaries, ", ")))
}

// checkConfig requires the deployed config file at its fixed destination.
func checkConfig(report *Report) {
	dest := config.MangoConfigPath()
	if _, err := os.Stat(dest); err != nil {
		report.Failures = append(report.Failures,
			fmt.Sprintf("compositor config missing at %s", dest))
	}
}

// checkShell accepts any of: shell binary on the path, shell package
// installed, or the manual-install directory present. A missing quickshell
// launcher is only a hint.
func checkShell(ctx context.Context, mgr manager.Manager, report *Report) {
	found := false

	if _, err := exec.LookPath(installer.ShellPackage); err == nil {
		found = true
	}
	if !found && mgr != nil {
		if installed, _ := mgr.IsInstalled(ctx, installer.ShellPackage); installed {
			found = true
		}
	}
	if !found {
		if _, err := os.Stat(config.NoctaliaDir()); err == nil {
			found = true
		}
	}

	if !found {
		report.Failures = append(report.Failures,
			fmt.Sprintf("shell not found: no %s binary, package, or install at %s",
				installer.ShellPackage, config.NoctaliaDir()))
		return
	}

	if _, err := exec.LookPath("qs"); err != nil {
		report.Hints = append(report.Hints,
			"quickshell launcher (qs) not found; the shell needs quickshell to run")
	}
}
