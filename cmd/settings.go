package cmd

import (
	"fmt"

	settingstoml "github.com/bnema/labdesk/internal/adapters/settings/toml"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the labdesk settings file",
	}

	cmd.AddCommand(
		newSettingsInitCmd(app),
		newSettingsShowCmd(app),
	)

	return cmd
}

func newSettingsInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := settingstoml.Init(app.settings.Path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "settings written to %s\n", app.settings.Path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing settings file")
	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and resolved endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := settingstoml.Encode(app.settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %s\n%s", app.settings.Path, data); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n# resolved\napi_base = %q\nnotification_endpoint = %q\n",
				app.resolver.APIBase(), app.resolver.NotificationEndpoint())
			return err
		},
	}
}
