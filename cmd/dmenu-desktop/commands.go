package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/dmenu-desktop/pkg/app"
	"github.com/lvim-tech/dmenu-desktop/pkg/config"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the indexed entries",
		Long:  "Print the entry names exactly as they are sent to the selector, or the full name to command mapping with --format yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := setup(cmd.OutOrStdout(), opts, nil)
			if err != nil {
				return err
			}

			idx, err := a.BuildIndex()
			if err != nil {
				return err
			}

			return app.WriteIndex(cmd.OutOrStdout(), idx, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", app.FormatText, "Output format: text or yaml")

	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to ~/.config/dmenu-desktop/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Fprintln(out, "\nYou can now edit the config file to customize dmenu-desktop.")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dmenu-desktop version %s\n", version)
		},
	}
}
