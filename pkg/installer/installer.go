package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/internal/executor"
	"github.com/harshv5094/mango-titus/internal/ui"
	"github.com/harshv5094/mango-titus/pkg/deps"
	"github.com/harshv5094/mango-titus/pkg/download"
	"github.com/harshv5094/mango-titus/pkg/manager"
	"github.com/harshv5094/mango-titus/pkg/manager/aur"
	"github.com/harshv5094/mango-titus/pkg/resolver"
)

// Accepted names for the installed compositor binary and its repository
// package. Repositories disagree on which spelling they ship.
var (
	CompositorBinaries = []string{"mango", "mangowc"}
	compositorPackages = []string{"mangowc", "mango"}
)

// ShellPackage is the shell's package name in repositories and the AUR.
const ShellPackage = "noctalia-shell"

// Installer drives the install pipeline against one detected backend.
type Installer struct {
	cfg     *config.Config
	res     *resolver.Resolver
	helper  *aur.Helper // nil unless running under pacman with a helper installed
	exec    *executor.Executor
	fetcher *download.Fetcher
	opts    manager.InstallOpts
}

// New creates an installer. helper may be nil.
func New(cfg *config.Config, res *resolver.Resolver, helper *aur.Helper, exec *executor.Executor, opts manager.InstallOpts) *Installer {
	return &Installer{
		cfg:     cfg,
		res:     res,
		helper:  helper,
		exec:    exec,
		fetcher: download.NewFetcher(""),
		opts:    opts,
	}
}

// InstallDependencies resolves and installs the backend's dependency set:
// the required packages as one batched call, then the optional packages,
// which never abort the run.
func (i *Installer) InstallDependencies(ctx context.Context) error {
	mgrName := i.res.Manager().Name()
	spec, ok := deps.For(mgrName)
	if !ok {
		return fmt.Errorf("no dependency set defined for %s", mgrName)
	}

	if err := i.res.EnsureFresh(ctx); err != nil {
		ui.WarningMsg("Metadata refresh failed, queries may be stale: %v", err)
	}

	required, err := spec.ResolveRequired(ctx, i.res)
	if err != nil {
		return err
	}

	ui.InfoMsg("Installing %d required packages via %s", len(required), i.res.Manager().DisplayName())
	if err := i.res.InstallRequired(ctx, required, i.opts); err != nil {
		return err
	}

	installed, missing, err := i.res.InstallOptional(ctx, spec.Optional, i.opts)
	if err != nil {
		ui.WarningMsg("Optional packages failed to install: %v", err)
	} else if len(installed) > 0 {
		ui.InfoMsg("Installed %d optional packages", len(installed))
	}
	for _, name := range missing {
		ui.WarningMsg("Optional package not available: %s", name)
	}

	return nil
}

// InstallCompositor walks the compositor's install chain. Without a
// configured source repository there is no terminal fallback: exhaustion
// aborts the run.
func (i *Installer) InstallCompositor(ctx context.Context) (Outcome, error) {
	strategies := []Strategy{
		{Name: "presence check", Run: i.compositorPresent},
		{Name: "repository install", Run: i.compositorRepo},
	}
	if i.helper != nil {
		strategies = append(strategies, Strategy{Name: "AUR install", Run: i.compositorAUR})
	}
	if i.cfg.Sources.MangoRepo != "" {
		strategies = append(strategies, Strategy{Name: "source build", Run: i.compositorSource})
	}

	outcome, err := RunChain(ctx, "compositor", strategies)
	if err != nil && i.cfg.Sources.MangoRepo == "" {
		return outcome, fmt.Errorf("%w (set %s to enable building from source)", err, config.EnvMangoRepo)
	}
	return outcome, err
}

// InstallShell walks the shell's install chain, ending in the manual
// release download.
func (i *Installer) InstallShell(ctx context.Context) (Outcome, error) {
	strategies := []Strategy{
		{Name: "presence check", Run: i.shellPresent},
		{Name: "repository install", Run: i.shellRepo},
	}
	if i.helper != nil {
		strategies = append(strategies, Strategy{Name: "AUR install", Run: i.shellAUR})
	}
	if i.cfg.Sources.NoctaliaRepo != "" {
		strategies = append(strategies, Strategy{Name: "source install", Run: i.shellSource})
	}
	strategies = append(strategies, Strategy{Name: "release download", Run: i.shellRelease})

	return RunChain(ctx, "shell", strategies)
}

// compositorPresent short-circuits the chain when the compositor is already
// installed, by binary or by package query.
func (i *Installer) compositorPresent(ctx context.Context) (Outcome, error) {
	for _, bin := range CompositorBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return OutcomeAlreadyPresent, nil
		}
	}
	for _, pkg := range compositorPackages {
		if installed, _ := i.res.Manager().IsInstalled(ctx, pkg); installed {
			return OutcomeAlreadyPresent, nil
		}
	}
	return OutcomeSkipped, nil
}

func (i *Installer) compositorRepo(ctx context.Context) (Outcome, error) {
	name, err := i.res.ChooseFirstAvailable(ctx, compositorPackages)
	if err != nil {
		return OutcomeSkipped, err
	}

	if err := i.res.Manager().Install(ctx, []string{name}, i.opts); err != nil {
		return OutcomeSkipped, fmt.Errorf("installing %s: %w", name, err)
	}
	return OutcomeRepoPackage, nil
}

func (i *Installer) compositorAUR(ctx context.Context) (Outcome, error) {
	if err := i.helper.Install(ctx, []string{"mangowc"}, i.opts); err != nil {
		return OutcomeSkipped, fmt.Errorf("%s install failed: %w", i.helper.Name(), err)
	}
	return OutcomeAURPackage, nil
}

func (i *Installer) compositorSource(ctx context.Context) (Outcome, error) {
	if err := i.buildFromSource(ctx, i.cfg.Sources.MangoRepo); err != nil {
		return OutcomeSkipped, err
	}
	return OutcomeSourceBuild, nil
}

// buildFromSource clones the repository into an ephemeral working directory
// and runs the meson/ninja build and privileged install. The working
// directory is removed on success and failure alike.
func (i *Installer) buildFromSource(ctx context.Context, repoURL string) error {
	workDir, err := os.MkdirTemp("", "mango-titus-build-")
	if err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	srcDir := filepath.Join(workDir, "src")
	if err := i.exec.Run(ctx, "git", "clone", "--depth=1", repoURL, srcDir); err != nil {
		return fmt.Errorf("cloning %s: %w", repoURL, err)
	}
	if err := i.exec.RunDir(ctx, srcDir, "meson", "setup", "build"); err != nil {
		return fmt.Errorf("configuring build: %w", err)
	}
	if err := i.exec.RunDir(ctx, srcDir, "ninja", "-C", "build"); err != nil {
		return fmt.Errorf("building: %w", err)
	}
	if err := i.exec.RunSudoDir(ctx, srcDir, "ninja", "-C", "build", "install"); err != nil {
		return fmt.Errorf("installing build artifacts: %w", err)
	}
	return nil
}

// shellPresent short-circuits when the shell is discoverable by binary,
// package query, or a prior manual install.
func (i *Installer) shellPresent(ctx context.Context) (Outcome, error) {
	if _, err := exec.LookPath(ShellPackage); err == nil {
		return OutcomeAlreadyPresent, nil
	}
	if installed, _ := i.res.Manager().IsInstalled(ctx, ShellPackage); installed {
		return OutcomeAlreadyPresent, nil
	}
	if _, err := os.Stat(config.NoctaliaDir()); err == nil {
		return OutcomeAlreadyPresent, nil
	}
	return OutcomeSkipped, nil
}

func (i *Installer) shellRepo(ctx context.Context) (Outcome, error) {
	if !i.res.Exists(ctx, ShellPackage) {
		return OutcomeSkipped, &resolver.NotFoundError{Candidates: []string{ShellPackage}}
	}
	if err := i.res.Manager().Install(ctx, []string{ShellPackage}, i.opts); err != nil {
		return OutcomeSkipped, fmt.Errorf("installing %s: %w", ShellPackage, err)
	}
	return OutcomeRepoPackage, nil
}

func (i *Installer) shellAUR(ctx context.Context) (Outcome, error) {
	if err := i.helper.Install(ctx, []string{ShellPackage}, i.opts); err != nil {
		return OutcomeSkipped, fmt.Errorf("%s install failed: %w", i.helper.Name(), err)
	}
	return OutcomeAURPackage, nil
}

// shellSource clones the shell repository into the fixed quickshell config
// directory, replacing any prior contents.
func (i *Installer) shellSource(ctx context.Context) (Outcome, error) {
	dest := config.NoctaliaDir()

	if i.opts.DryRun {
		ui.MutedMsg("[dry-run] Would clone %s into %s", i.cfg.Sources.NoctaliaRepo, dest)
		return OutcomeSourceBuild, nil
	}

	staging, err := stagingDir(dest)
	if err != nil {
		return OutcomeSkipped, err
	}
	defer os.RemoveAll(staging)

	if err := i.exec.Run(ctx, "git", "clone", "--depth=1", i.cfg.Sources.NoctaliaRepo, staging); err != nil {
		return OutcomeSkipped, fmt.Errorf("cloning %s: %w", i.cfg.Sources.NoctaliaRepo, err)
	}
	if err := swapInto(staging, dest); err != nil {
		return OutcomeSkipped, err
	}
	return OutcomeSourceBuild, nil
}

// shellRelease downloads the pre-built release archive and extracts it into
// the fixed quickshell config directory.
func (i *Installer) shellRelease(ctx context.Context) (Outcome, error) {
	dest := config.NoctaliaDir()
	url := i.cfg.Sources.NoctaliaRelease

	if i.opts.DryRun {
		ui.MutedMsg("[dry-run] Would download %s into %s", url, dest)
		return OutcomeManualInstall, nil
	}

	staging, err := stagingDir(dest)
	if err != nil {
		return OutcomeSkipped, err
	}
	defer os.RemoveAll(staging)

	err = ui.WithSpinner("Downloading release archive", func() error {
		return i.fetcher.FetchArchive(ctx, url, staging)
	})
	if err != nil {
		return OutcomeSkipped, err
	}
	if err := swapInto(staging, dest); err != nil {
		return OutcomeSkipped, err
	}
	return OutcomeManualInstall, nil
}

// stagingDir creates a temp directory next to dest so the final swap is a
// same-filesystem rename.
func stagingDir(dest string) (string, error) {
	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", parent, err)
	}
	staging, err := os.MkdirTemp(parent, ".staging-")
	if err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	return staging, nil
}

// swapInto replaces dest with the fully populated staging directory. A
// prior install at dest is only removed once staging is complete.
func swapInto(staging, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("clearing %s: %w", dest, err)
	}
	if err := os.Rename(staging, dest); err != nil {
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
