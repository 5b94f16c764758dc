// Package stories is the catalog of runnable layout demos shown by the
// showcase and the stories command.
package stories

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/suggest"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// Story is one named demo. New builds a fresh model each call so stories
// never share state.
type Story struct {
	Name        string
	Group       string
	Description string
	New         func(ctx components.RenderContext, log *logger.Logger) tea.Model
}

// Registry holds stories in registration order.
type Registry struct {
	stories []Story
	byName  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds stories. Names must be unique and New must be set.
func (r *Registry) Register(stories ...Story) error {
	for _, s := range stories {
		if s.Name == "" || s.New == nil {
			return layouterrors.NewValidationError("story", "story needs a name and a constructor", nil)
		}
		if _, exists := r.byName[s.Name]; exists {
			return layouterrors.NewValidationError("story", fmt.Sprintf("story %q already registered", s.Name), nil)
		}
		r.byName[s.Name] = len(r.stories)
		r.stories = append(r.stories, s)
	}
	return nil
}

// All returns every story in registration order.
func (r *Registry) All() []Story {
	out := make([]Story, len(r.stories))
	copy(out, r.stories)
	return out
}

// Names returns story names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.stories))
	for _, s := range r.stories {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a story by name. Unknown names return a LookupError carrying
// the closest registered name.
func (r *Registry) Lookup(name string) (Story, error) {
	if i, ok := r.byName[name]; ok {
		return r.stories[i], nil
	}
	return Story{}, layouterrors.NewLookupError("story", name, suggest.Closest(name, r.Names()))
}

// Default returns a registry holding the built-in stories.
func Default() *Registry {
	r := NewRegistry()
	// Built-in names are unique.
	_ = r.Register(builtin()...)
	return r
}

func builtin() []Story {
	return []Story{
		{Name: "tabs-basic", Group: "tabs", Description: "Three labelled tabs with arrow-key navigation", New: tabsBasic},
		{Name: "tabs-disabled", Group: "tabs", Description: "A disabled tab is skipped by navigation", New: tabsDisabled},
		{Name: "tabs-vertical", Group: "tabs", Description: "Tabs stacked along the left edge", New: tabsVertical},
		{Name: "tabs-scrollable", Group: "tabs", Description: "More tabs than fit, with overflow markers", New: tabsScrollable},
		{Name: "tabs-icons", Group: "tabs", Description: "Icon tabs, some icon-only", New: tabsIcons},
		{Name: "sidebar", Group: "sidebar", Description: "Standard-width sidebar beside main content", New: sidebarBasic},
		{Name: "sidebar-collapsible", Group: "sidebar", Description: "Press [ to collapse to an icon rail", New: sidebarCollapsible},
		{Name: "sidebar-responsive", Group: "sidebar", Description: "Sidebar hidden below the md breakpoint", New: sidebarResponsive},
		{Name: "canvas-hero", Group: "canvas", Description: "Animated floating shapes behind a call to action", New: canvasHero},
		{Name: "canvas-static", Group: "canvas", Description: "The hero canvas with animation turned off", New: canvasStatic},
	}
}

// RenderStatic renders a fresh instance of s once at the given size in
// cells.
func RenderStatic(s Story, ctx components.RenderContext, width, height int) string {
	var model tea.Model = s.New(ctx, nil)
	model, _ = model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return model.View()
}
