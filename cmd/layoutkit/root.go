package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/settings"
)

type rootFlags struct {
	configPath string
	verbose    bool
	color      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "layoutkit",
		Short:         "layoutkit renders tab, sidebar, and canvas layouts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateColor(flags.color); err != nil {
				return err
			}
			return app.load(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the showcase.
			if len(args) == 0 {
				return runShowcase(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default $LAYOUTKIT_CONFIG or the user config dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "", "Color output: auto, always, or never")

	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newStoriesCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func validateColor(mode string) error {
	switch mode {
	case "", settings.ColorAuto, settings.ColorAlways, settings.ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid --color %q: want auto, always, or never", mode)
	}
}
