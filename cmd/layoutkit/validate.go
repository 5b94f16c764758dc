package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
)

type validateOptions struct {
	strict bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <layout.yaml>",
		Short: "Check a layout document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := validateDocumentPath(path); err != nil {
				return err
			}

			doc, err := config.ParseDocument(path)
			if err != nil {
				return err
			}
			// Building catches what struct validation cannot, such as
			// durations that only fail at conversion.
			if _, err := doc.BuildPage(app.Theme); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := doc.Lint()
			for _, w := range warnings {
				app.Log.Warn(w.Message, "field", w.Field, "suggestion", w.Suggestion)
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			if opts.strict && len(warnings) > 0 {
				return fmt.Errorf("%s: %d warning(s) in strict mode", path, len(warnings))
			}
			fmt.Fprintf(out, "✓ %s is valid (%s)\n", path, doc.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")

	return cmd
}
