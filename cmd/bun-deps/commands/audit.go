package commands

import (
	"github.com/spf13/cobra"
	"github.com/thewilloftheshadow/bun-deps/internal/app"
)

func (c *CLI) newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check resolved packages against the registry advisory database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			return c.app.Audit(cmd.Context(), app.AuditOptions{
				NoCache: noCache,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the local report cache and query the registry")
	return cmd
}
