package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

// KeyMap holds the gallery bindings. Story bindings apply while the preview
// has focus.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Switch  key.Binding
	Sidebar key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev story")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next story")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "focus story")),
		Switch:  key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "switch pane")),
		Sidebar: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle list")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Switch, k.Sidebar}, {k.Help, k.Quit}}
}

// focusedKeys shows the story's bindings next to the pane switch while the
// preview has focus.
type focusedKeys struct {
	gallery KeyMap
	story   help.KeyMap
}

func (k focusedKeys) ShortHelp() []key.Binding {
	return append(k.story.ShortHelp(), k.gallery.Switch, k.gallery.Help, k.gallery.Quit)
}

func (k focusedKeys) FullHelp() [][]key.Binding {
	return append(k.story.FullHelp(), []key.Binding{k.gallery.Switch, k.gallery.Sidebar, k.gallery.Help, k.gallery.Quit})
}

// storyKeys returns the bindings of a story model, when it has any.
func storyKeys(model any) (help.KeyMap, bool) {
	switch m := model.(type) {
	case layout.TabsModel:
		return m.Keys, true
	case layout.SidebarModel:
		return m.Keys, true
	case layout.CanvasModel:
		return m.Keys, true
	}
	return nil, false
}
