package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommandsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the UI can invoke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range app.registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
