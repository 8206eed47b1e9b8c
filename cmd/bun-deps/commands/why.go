package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWhyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "why [packages...]",
		Short: "Explain how packages entered the dependency graph",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Why(cmd.Context(), args)
		},
	}
}
