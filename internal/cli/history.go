package cli

import (
	"github.com/spf13/cobra"

	"github.com/harshv5094/mango-titus/internal/journal"
	"github.com/harshv5094/mango-titus/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past install runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := journal.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			ui.InfoMsg("No install runs recorded yet")
			return nil
		}

		ui.HeaderMsg("Install history")
		for _, e := range entries {
			if e.Success {
				ui.SuccessMsg("%s", e.Summary())
			} else {
				ui.ErrorMsg("%s", e.Summary())
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum entries to show")
}
