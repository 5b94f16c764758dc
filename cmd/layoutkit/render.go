package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/pkg/diff"
)

type renderOptions struct {
	size   sizeOptions
	golden string
	update bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <layout.yaml>",
		Short: "Render a layout document once to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := validateDocumentPath(path); err != nil {
				return err
			}

			doc, err := config.ParseDocument(path)
			if err != nil {
				app.Log.Error(err, "failed to load layout", "path", path)
				return err
			}
			for _, w := range doc.Lint() {
				app.Log.Warn(w.Message, "field", w.Field, "suggestion", w.Suggestion)
			}

			page, err := doc.BuildPage(app.Theme)
			if err != nil {
				return fmt.Errorf("build %s: %w", path, err)
			}

			width, height := opts.size.resolve(app)
			page.SetViewportWidth(page.Theme.Cell.PixelWidth(width))
			app.Log.Debug("rendering layout", "name", doc.Name, "width", width, "height", height)

			ctx := components.NewContext(page.Theme).WithConstraints(components.Bounded(width, height))
			view := page.View(ctx) + "\n"
			if opts.golden != "" {
				return compareGolden(cmd, app, opts, view)
			}
			fmt.Fprint(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.size.width, "width", 0, "Viewport width in cells (default: settings, then terminal)")
	cmd.Flags().IntVar(&opts.size.height, "height", 0, "Viewport height in cells (default: settings, then terminal)")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the render with a snapshot file instead of printing it")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden snapshot with the current render")

	return cmd
}

func compareGolden(cmd *cobra.Command, app *AppContext, opts renderOptions, view string) error {
	out := cmd.OutOrStdout()

	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(view), 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		app.Log.Info("snapshot updated", "path", opts.golden)
		fmt.Fprintf(out, "✓ updated %s\n", opts.golden)
		return nil
	}

	golden, err := os.ReadFile(opts.golden)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	d := diff.Lines(string(golden), view, opts.golden, "render")
	if d == "" {
		fmt.Fprintf(out, "✓ render matches %s\n", opts.golden)
		return nil
	}

	fmt.Fprint(out, d)
	added, removed := diff.Summary(d)
	return fmt.Errorf("render differs from %s: %d line(s) added, %d removed", opts.golden, added, removed)
}
