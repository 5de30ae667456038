package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
)

func addUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-sync", false, "Regenerate lockfiles without syncing the environment")
	cmd.Flags().Bool("json", false, "Emit log output as JSON lines (default when stderr is not a terminal)")
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Regenerate the base and dev lockfiles",
		Args:  cobra.NoArgs,
		RunE:  c.runUpdate,
	}
	addUpdateFlags(cmd)
	return cmd
}

func (c *CLI) runUpdate(cmd *cobra.Command, _ []string) error {
	c.applyJSON(cmd)
	noSync, _ := cmd.Flags().GetBool("no-sync")

	return c.app.Update(cmd.Context(), app.UpdateOptions{
		NoSync: noSync,
	})
}
