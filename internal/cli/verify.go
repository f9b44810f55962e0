package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshv5094/mango-titus/internal/ui"
	"github.com/harshv5094/mango-titus/pkg/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-run the post-install checks",
	Long: `Checks that the MangoWC binary is on PATH, that its configuration
file exists, and that the Noctalia shell is installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.HeaderMsg("Verifying installation")

		// A missing package manager degrades the package checks but the
		// filesystem checks still run.
		mgr := registry.Detect()
		if mgr == nil {
			ui.WarningMsg("No supported package manager found; package checks skipped")
		}

		report := verify.Run(cmd.Context(), mgr)
		printReport(report)
		if !report.Passed() {
			return fmt.Errorf("verification failed: %d check(s) did not pass", len(report.Failures))
		}
		return nil
	},
}
