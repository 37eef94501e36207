package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "labdesk",
		Short:         "labdesk: lab management backend for the desktop shell",
		Long:          "labdesk exposes the lab management commands (auth, samples, techniques, inventory, legislations, financial audits, notifications, files) against the remote lab API, either one call at a time or through the local bridge used by the desktop UI.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.logger.SetOutput(cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newCommandsCmd(app),
		newCallCmd(app),
		newServeCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
