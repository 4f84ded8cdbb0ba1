package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/antscan/internal/app"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets <buildfile>",
		Short: "Show the targets extracted from one buildfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Targets(cmd.Context(), args[0], app.TargetsOptions{
				Dir:  dirFlag(cmd),
				JSON: asJSON,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print the extraction as JSON")
	return cmd
}
