package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/stories"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

func newStoriesCmd(app *AppContext) *cobra.Command {
	size := sizeOptions{}

	cmd := &cobra.Command{
		Use:   "stories [name]",
		Short: "List stories or render one statically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := stories.Default()
			if len(args) == 0 {
				return listStories(cmd, registry)
			}

			story, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			width, height := size.resolve(app)
			app.Log.Debug("rendering story", "story", story.Name, "width", width, "height", height)

			ctx := app.renderContext().WithConstraints(components.Bounded(width, height))
			fmt.Fprintln(cmd.OutOrStdout(), stories.RenderStatic(story, ctx, width, height))
			return nil
		},
	}

	cmd.Flags().IntVar(&size.width, "width", 0, "Render width in cells (default: settings, then terminal)")
	cmd.Flags().IntVar(&size.height, "height", 0, "Render height in cells (default: settings, then terminal)")

	return cmd
}

func listStories(cmd *cobra.Command, registry *stories.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGROUP\tDESCRIPTION")
	for _, s := range registry.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Group, s.Description)
	}
	return w.Flush()
}
