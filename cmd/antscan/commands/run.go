package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/antscan/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task>",
		Short: "Run a task by its display or target name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			file, _ := cmd.Flags().GetString("file")
			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				Dir:  dirFlag(cmd),
				File: file,
			})
		},
	}
	cmd.Flags().StringP("file", "f", "", "Only consider tasks of this buildfile")
	return cmd
}
