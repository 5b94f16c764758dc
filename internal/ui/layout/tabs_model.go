package layout

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// TabKeyMap holds the key bindings of a TabsModel.
type TabKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// DefaultTabKeyMap returns arrow-key bindings matching the orientation.
func DefaultTabKeyMap(o Orientation) TabKeyMap {
	km := TabKeyMap{
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first tab")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open tab")),
	}
	if o == OrientationVertical {
		km.Next = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next tab"))
		km.Prev = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev tab"))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k TabKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate}
}

// FullHelp implements help.KeyMap.
func (k TabKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.First, k.Last}, {k.Activate}}
}

// TabChangedMsg is emitted after a user selection changed the active tab.
type TabChangedMsg struct {
	SwitcherID string
	Index      int
	TabID      string
}

// TabsModel drives a TabSwitcher from bubbletea messages.
type TabsModel struct {
	Switcher *TabSwitcher
	Keys     TabKeyMap

	ctx    components.RenderContext
	width  int
	height int
	log    *logger.Logger
}

// NewTabsModel wraps sw. The context's theme is used for every render.
func NewTabsModel(sw *TabSwitcher, ctx components.RenderContext, log *logger.Logger) TabsModel {
	ctx.Theme = ctx.Theme.Normalize()
	return TabsModel{
		Switcher: sw,
		Keys:     DefaultTabKeyMap(sw.Orientation()),
		ctx:      ctx,
		log:      log.Component("tabs"),
	}
}

// Init implements tea.Model.
func (m TabsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m TabsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sw := m.Switcher
	switch {
	case key.Matches(msg, m.Keys.Next):
		sw.FocusNext()
	case key.Matches(msg, m.Keys.Prev):
		sw.FocusPrev()
	case key.Matches(msg, m.Keys.First):
		sw.FocusFirst()
	case key.Matches(msg, m.Keys.Last):
		sw.FocusLast()
	case key.Matches(msg, m.Keys.Activate):
		return m, m.changed(sw.Activate())
	default:
		// Digits jump straight to a tab.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return m, m.changed(sw.Select(int(s[0] - '1')))
		}
	}
	return m, nil
}

func (m TabsModel) changed(ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	tab, _ := m.Switcher.ActiveTab()
	index := m.Switcher.ActiveIndex()
	m.log.Debug("tab selected", "index", index, "id", tab.ID)

	msg := TabChangedMsg{SwitcherID: m.Switcher.ID(), Index: index, TabID: tab.ID}
	return func() tea.Msg { return msg }
}

// View implements tea.Model.
func (m TabsModel) View() string {
	return m.Switcher.ViewWithContext(m.renderContext())
}

func (m TabsModel) renderContext() components.RenderContext {
	return boundedContext(m.ctx, m.width, m.height)
}

// boundedContext limits ctx to a terminal size, leaving unknown dimensions
// unconstrained.
func boundedContext(ctx components.RenderContext, width, height int) components.RenderContext {
	if width <= 0 {
		return ctx
	}
	if height <= 0 {
		height = -1
	}
	return ctx.WithConstraints(components.Bounded(width, height))
}
