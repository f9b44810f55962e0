package cli

import (
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/harshv5094/mango-titus/internal/executor"
	"github.com/harshv5094/mango-titus/internal/ui"
	"github.com/harshv5094/mango-titus/pkg/manager/aur"
	"github.com/harshv5094/mango-titus/pkg/manager/detector"
)

// buildTools are probed for informational purposes. Missing tools are
// normally installed by the dependency step.
var buildTools = []string{"git", "meson", "ninja", "curl"}

// expectedManager maps the detected distribution family to the backend it
// usually ships. Empty for unrecognized distributions.
func expectedManager(sys *detector.SystemInfo) string {
	switch {
	case sys.MatchesDistro("debian", "ubuntu"):
		return "apt"
	case sys.MatchesDistro("fedora", "rhel", "centos"):
		return "dnf"
	case sys.MatchesDistro("arch"):
		return "pacman"
	case sys.MatchesDistro("opensuse", "suse", "opensuse-tumbleweed", "opensuse-leap"):
		return "zypper"
	default:
		return ""
	}
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect the environment without changing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.HeaderMsg("Environment check")

		sys := detector.Detect()
		ui.InfoMsg("System")
		if sys.PrettyName != "" {
			ui.MutedMsg("  Distribution: %s", sys.PrettyName)
		} else {
			ui.MutedMsg("  Distribution: unknown (/etc/os-release missing)")
		}
		if len(sys.DistroFamily) > 0 {
			ui.MutedMsg("  Family:       %s", sys.DistroFamily)
		}
		ui.MutedMsg("  Architecture: %s", sys.Arch)

		ui.InfoMsg("Package managers")
		for _, mgr := range registry.All() {
			if mgr.IsAvailable() {
				ui.SuccessMsg("  %s (%s)", mgr.DisplayName(), mgr.Binary())
			} else {
				ui.MutedMsg("  %s: not found", mgr.DisplayName())
			}
		}
		if expected := expectedManager(sys); expected != "" {
			if mgr, ok := registry.Get(expected); ok && !mgr.IsAvailable() {
				ui.WarningMsg("  %s systems usually ship %s, which was not found", sys.Distribution, expected)
			}
		}

		ui.InfoMsg("Privileges")
		switch {
		case executor.IsRoot():
			ui.SuccessMsg("  Running as root")
		case executor.HasSudo():
			ui.SuccessMsg("  sudo available")
		default:
			ui.WarningMsg("  No sudo and not root; privileged commands will run unelevated")
		}

		if mgr := registry.Detect(); mgr != nil && mgr.Name() == "pacman" {
			ui.InfoMsg("AUR")
			if helper := aur.Detect(cfg.AUR.Helper); helper != nil {
				ui.SuccessMsg("  Helper: %s", helper.Name())
			} else {
				ui.WarningMsg("  No AUR helper found (yay or paru); AUR installs disabled")
			}
		}

		ui.InfoMsg("Build tools")
		for _, tool := range buildTools {
			if _, err := exec.LookPath(tool); err == nil {
				ui.SuccessMsg("  %s", tool)
			} else {
				ui.MutedMsg("  %s: not found", tool)
			}
		}

		return nil
	},
}
