package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/showcase"
	"github.com/alexisbeaulieu97/layoutkit/internal/stories"
)

func newShowcaseCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase [story]",
		Short: "Browse the layout stories interactively",
		Long:  `Open the interactive gallery. Pass a story name to start on it; "layoutkit stories" lists them.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runShowcase(cmd, app, start)
		},
	}

	return cmd
}

func runShowcase(cmd *cobra.Command, app *AppContext, start string) error {
	model, err := showcase.New(stories.Default(), start, app.renderContext(), app.Log)
	if err != nil {
		return err
	}

	app.Log.Info("launching showcase", "story", start)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		app.Log.Error(err, "showcase failed")
		return fmt.Errorf("showcase: %w", err)
	}
	return nil
}
