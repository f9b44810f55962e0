// Package cli implements the command-line interface for mango-titus.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/internal/executor"
	"github.com/harshv5094/mango-titus/internal/ui"
	"github.com/harshv5094/mango-titus/pkg/manager"
	"github.com/harshv5094/mango-titus/pkg/manager/native"
)

var (
	// Global flags
	cfgFile string
	dryRun  bool
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg      *config.Config
	registry *manager.Registry
	exe      *executor.Executor
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mango-titus",
	Short: "Installer for the MangoWC compositor and Noctalia shell",
	Long: `mango-titus detects your distribution's package manager, installs the
build dependencies for the MangoWC Wayland compositor, installs or builds
the compositor, deploys a starter configuration, and sets up the Noctalia
desktop shell.

Supported package managers: apt, dnf, pacman, zypper.

Examples:
  mango-titus install            # Run the full install pipeline
  mango-titus install -y         # Install without confirmation
  mango-titus verify             # Re-run the post-install checks
  mango-titus doctor             # Inspect the environment`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	// One executor carries the dry-run and verbose settings through every
	// backend and build step.
	exe = executor.New(cfg.General.DryRun, cfg.Output.Verbose)
	registry = manager.NewRegistry()
	registerManagers()

	return nil
}

// registerManagers registers the supported backends in fixed probe
// priority order.
func registerManagers() {
	apt := native.NewAPT()
	dnf := native.NewDNF()
	pacman := native.NewPacman()
	zypper := native.NewZypper()

	apt.SetExecutor(exe)
	dnf.SetExecutor(exe)
	pacman.SetExecutor(exe)
	zypper.SetExecutor(exe)

	registry.Register(apt)
	registry.Register(dnf)
	registry.Register(pacman)
	registry.Register(zypper)
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mango-titus version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("mango-titus version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
