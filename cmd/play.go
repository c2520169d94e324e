package cmd

import (
	"github.com/spf13/cobra"
)

func newPlayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Answer the quiz in the terminal form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApp(cmd)
		},
	}
}
