package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/settings"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// AppContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type AppContext struct {
	Settings settings.Settings
	Log      *logger.Logger
	Theme    components.Theme
}

func (app *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	s, err := settings.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.color != "" {
		s.Color = flags.color
	}
	if flags.verbose {
		s.Log.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	theme := components.DefaultTheme()
	if s.Theme != "" {
		spec, err := config.ParseTheme(s.Theme)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		theme = spec.Apply(theme)
		log.Debug("theme loaded", "path", s.Theme)
	}

	lipgloss.SetColorProfile(s.ColorProfile(cmd.OutOrStdout()))

	app.Settings = s
	app.Log = log
	app.Theme = theme.Normalize()
	return nil
}

func (app *AppContext) renderContext() components.RenderContext {
	return components.NewContext(app.Theme)
}
