package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/internal/executor"
	"github.com/harshv5094/mango-titus/internal/journal"
	"github.com/harshv5094/mango-titus/internal/ui"
	"github.com/harshv5094/mango-titus/pkg/installer"
	"github.com/harshv5094/mango-titus/pkg/manager"
	"github.com/harshv5094/mango-titus/pkg/manager/aur"
	"github.com/harshv5094/mango-titus/pkg/manager/detector"
	"github.com/harshv5094/mango-titus/pkg/resolver"
	"github.com/harshv5094/mango-titus/pkg/verify"
)

var (
	skipDeps    bool
	skipVerify  bool
	forceConfig bool
)

const pipelineSteps = 6

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install MangoWC, its configuration, and the Noctalia shell",
	Long: `Runs the full install pipeline:

  1. Detect the system package manager
  2. Install build and runtime dependencies
  3. Install the MangoWC compositor (repo, AUR, or source build)
  4. Deploy the compositor configuration
  5. Install the Noctalia shell (repo, AUR, source, or release archive)
  6. Verify the installation`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd.Context())
	},
}

func init() {
	installCmd.Flags().BoolVar(&skipDeps, "skip-deps", false, "skip dependency installation")
	installCmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "skip post-install verification")
	installCmd.Flags().BoolVar(&forceConfig, "force-config", false, "overwrite an existing compositor config")
}

func runInstall(ctx context.Context) error {
	ui.HeaderMsg("MangoWC installer")

	sys := detector.Detect()
	if sys.PrettyName != "" {
		ui.MutedMsg("  System: %s (%s)", sys.PrettyName, sys.Arch)
	}

	// Step 1: detect the package manager
	ui.StepMsg(1, pipelineSteps, "Detecting package manager")
	mgr := registry.Detect()
	if mgr == nil {
		return ErrNoManager
	}
	ui.SuccessMsg("Using %s", mgr.DisplayName())

	if mgr.NeedsSudo() && !executor.CanElevate() {
		ui.WarningMsg("sudo not found and not running as root; privileged commands will run unelevated and may fail")
	}

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		ok, err := ui.Confirm(fmt.Sprintf("Install MangoWC and Noctalia via %s?", mgr.DisplayName()), true)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	// The journal is best effort. A locked or unwritable database must not
	// block the install itself.
	store, err := journal.Open()
	if err != nil {
		ui.WarningMsg("Install journal unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	res := resolver.New(mgr)

	// AUR helpers only make sense on pacman systems.
	var helper *aur.Helper
	if mgr.Name() == "pacman" {
		helper = aur.Detect(cfg.AUR.Helper)
		if helper != nil {
			helper.SetExecutor(exe)
			ui.MutedMsg("  AUR helper: %s", helper.Name())
		}
	}

	opts := manager.InstallOpts{
		AutoConfirm: cfg.General.AutoConfirm || cfg.General.DryRun,
		DryRun:      cfg.General.DryRun,
	}
	inst := installer.New(cfg, res, helper, exe, opts)

	// Step 2: dependencies
	ui.StepMsg(2, pipelineSteps, "Installing dependencies")
	if skipDeps {
		ui.MutedMsg("  Skipped (--skip-deps)")
	} else {
		entry := journal.NewEntry(journal.TargetDependencies)
		if err := inst.InstallDependencies(ctx); err != nil {
			entry.MarkFailed(err)
			record(store, entry)
			return fmt.Errorf("installing dependencies: %w", err)
		}
		entry.MarkSuccess("installed", mgr.Name())
		record(store, entry)
		ui.SuccessMsg("Dependencies ready")
	}

	// Step 3: compositor
	ui.StepMsg(3, pipelineSteps, "Installing MangoWC")
	entry := journal.NewEntry(journal.TargetCompositor)
	outcome, err := inst.InstallCompositor(ctx)
	if err != nil {
		entry.MarkFailed(err)
		record(store, entry)
		return err
	}
	entry.MarkSuccess(outcome.String(), "")
	record(store, entry)
	ui.SuccessMsg("MangoWC: %s", outcome)

	// Step 4: configuration
	ui.StepMsg(4, pipelineSteps, "Deploying compositor configuration")
	entry = journal.NewEntry(journal.TargetConfig)
	deployed, err := inst.DeployConfig(forceConfig)
	if err != nil {
		entry.MarkFailed(err)
		record(store, entry)
		return fmt.Errorf("deploying config: %w", err)
	}
	if deployed {
		entry.MarkSuccess("deployed", config.MangoConfigPath())
		ui.SuccessMsg("Config written to %s", config.MangoConfigPath())
	} else {
		entry.MarkSuccess("kept existing", config.MangoConfigPath())
		ui.InfoMsg("Existing config kept (use --force-config to overwrite)")
	}
	record(store, entry)

	// Step 5: shell
	ui.StepMsg(5, pipelineSteps, "Installing Noctalia shell")
	entry = journal.NewEntry(journal.TargetShell)
	outcome, err = inst.InstallShell(ctx)
	if err != nil {
		entry.MarkFailed(err)
		record(store, entry)
		return err
	}
	entry.MarkSuccess(outcome.String(), "")
	record(store, entry)
	ui.SuccessMsg("Noctalia: %s", outcome)

	// Step 6: verification
	ui.StepMsg(6, pipelineSteps, "Verifying installation")
	if skipVerify {
		ui.MutedMsg("  Skipped (--skip-verify)")
	} else if cfg.General.DryRun {
		ui.MutedMsg("  Skipped (dry run)")
	} else {
		report := verify.Run(ctx, mgr)
		printReport(report)
		if !report.Passed() {
			return fmt.Errorf("verification failed: %d check(s) did not pass", len(report.Failures))
		}
	}

	if res.Stale() {
		ui.WarningMsg("Package metadata could not be refreshed; results may be stale")
	}
	ui.SuccessMsg("All done. Log out and pick MangoWC from your display manager.")
	return nil
}

// record writes a journal entry, tolerating a missing store.
func record(store *journal.Store, entry *journal.Entry) {
	if store == nil {
		return
	}
	if err := store.Record(entry); err != nil {
		ui.WarningMsg("Could not record journal entry: %v", err)
	}
}

func printReport(report *verify.Report) {
	for _, f := range report.Failures {
		ui.ErrorMsg("%s", f)
	}
	for _, h := range report.Hints {
		ui.WarningMsg("%s", h)
	}
	if report.Passed() {
		ui.SuccessMsg("All checks passed")
	}
}
