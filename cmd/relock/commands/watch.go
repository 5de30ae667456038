package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the update whenever pyproject.toml changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyJSON(cmd)
			noSync, _ := cmd.Flags().GetBool("no-sync")
			window, _ := cmd.Flags().GetDuration("window")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Window: window,
				NoSync: noSync,
			})
		},
	}
	cmd.Flags().Bool("no-sync", false, "Regenerate lockfiles without syncing the environment")
	cmd.Flags().Bool("json", false, "Emit log output as JSON lines (default when stderr is not a terminal)")
	cmd.Flags().Duration("window", 0, "Debounce window before a change triggers an update")
	return cmd
}
