package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/antscan/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "List tasks and keep the list current as buildfiles change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{Dir: dirFlag(cmd)})
		},
	}
}
