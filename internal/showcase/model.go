// Package showcase is the interactive story gallery: a story list in a
// collapsible sidebar, the selected story live in the main region, and a
// help footer.
package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/stories"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

// Focus is the pane receiving keys.
type Focus int

const (
	FocusList Focus = iota
	FocusPreview
)

// gallery is shared by the sidebar renderables and the model copies
// bubbletea passes around.
type gallery struct {
	stories  []stories.Story
	selected int
	focus    Focus
	preview  tea.Model
	status   string
}

// Model is the showcase tea.Model.
type Model struct {
	Keys KeyMap

	state  *gallery
	frame  layout.SidebarModel
	help   help.Model
	ctx    components.RenderContext
	width  int
	height int
	log    *logger.Logger
}

// New creates the gallery with the named story selected. An empty start
// selects the first story.
func New(registry *stories.Registry, start string, ctx components.RenderContext, log *logger.Logger) (Model, error) {
	ctx.Theme = ctx.Theme.Normalize()

	state := &gallery{stories: registry.All()}
	if start != "" {
		if _, err := registry.Lookup(start); err != nil {
			return Model{}, err
		}
		for i, s := range state.stories {
			if s.Name == start {
				state.selected = i
			}
		}
	}

	m := Model{
		Keys:  DefaultKeyMap(),
		state: state,
		help:  help.New(),
		ctx:   ctx,
		log:   log.Component("showcase"),
	}

	composer := layout.NewSidebarComposer(ctx.Theme,
		storyList{g: state},
		storyPreview{g: state},
		layout.WithWidthPolicy(layout.PresetWidth(layout.PresetStandard)),
		layout.WithCollapsible(true),
		layout.WithSidebarRole(layout.RoleNavigation),
		layout.WithGap(1),
	)
	m.frame = layout.NewSidebarModel(composer, ctx, log)
	m.frame.Keys.Toggle = m.Keys.Sidebar

	if len(state.stories) > 0 {
		state.preview = state.stories[state.selected].New(ctx, log)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.state.preview == nil {
		return nil
	}
	return m.state.preview.Init()
}

// Selected returns the story shown in the preview.
func (m Model) Selected() (stories.Story, bool) {
	if len(m.state.stories) == 0 {
		return stories.Story{}, false
	}
	return m.state.stories[m.state.selected], true
}

// Focus returns the pane receiving keys.
func (m Model) Focus() Focus {
	return m.state.focus
}

// Preview returns the running story model.
func (m Model) Preview() tea.Model {
	return m.state.preview
}

// Status returns the last story event, if any.
func (m Model) Status() string {
	return m.state.status
}

// Composer exposes the sidebar layout framing the gallery.
func (m Model) Composer() *layout.SidebarComposer {
	return m.frame.Composer
}
