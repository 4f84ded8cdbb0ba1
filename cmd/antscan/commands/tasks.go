package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/antscan/internal/app"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of every buildfile in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Tasks(cmd.Context(), app.TasksOptions{
				Dir:  dirFlag(cmd),
				JSON: asJSON,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print task descriptors as JSON")
	return cmd
}
