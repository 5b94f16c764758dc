package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

const (
	sidebarFPS       = 60
	sidebarFrequency = 7.0
	sidebarDamping   = 1.0
	// settleThreshold is the pixel distance at which the eased width snaps
	// to its target.
	settleThreshold = 0.5
)

// SidebarKeyMap holds the key bindings of a SidebarModel.
type SidebarKeyMap struct {
	Toggle key.Binding
}

// DefaultSidebarKeyMap returns the default bindings.
func DefaultSidebarKeyMap() SidebarKeyMap {
	return SidebarKeyMap{
		Toggle: key.NewBinding(key.WithKeys("ctrl+b", "["), key.WithHelp("[", "toggle sidebar")),
	}
}

// ShortHelp implements help.KeyMap.
func (k SidebarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle}
}

// FullHelp implements help.KeyMap.
func (k SidebarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle}}
}

// SidebarCollapsedMsg is emitted after the user toggled the sidebar.
type SidebarCollapsedMsg struct {
	ComposerID string
	Collapsed  bool
}

// SidebarVisibilityMsg is emitted when a resize crosses the breakpoint.
type SidebarVisibilityMsg struct {
	ComposerID string
	Visible    bool
}

type sidebarFrameMsg struct {
	composerID string
}

// SidebarModel drives a SidebarComposer from bubbletea messages. The
// logical width changes immediately on toggle; the drawn width follows it
// on a critically damped spring.
type SidebarModel struct {
	Composer *SidebarComposer
	Keys     SidebarKeyMap

	ctx       components.RenderContext
	width     int
	height    int
	spring    harmonica.Spring
	drawn     float64
	velocity  float64
	animating bool
	log       *logger.Logger
}

// NewSidebarModel wraps composer.
func NewSidebarModel(composer *SidebarComposer, ctx components.RenderContext, log *logger.Logger) SidebarModel {
	ctx.Theme = ctx.Theme.Normalize()
	return SidebarModel{
		Composer: composer,
		Keys:     DefaultSidebarKeyMap(),
		ctx:      ctx,
		spring:   harmonica.NewSpring(harmonica.FPS(sidebarFPS), sidebarFrequency, sidebarDamping),
		log:      log.Component("sidebar"),
	}
}

// Init implements tea.Model.
func (m SidebarModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		before := m.Composer.Visible()
		visible := m.Composer.SetViewportWidth(m.ctx.Theme.Cell.PixelWidth(msg.Width))
		if before == visible {
			return m, nil
		}
		m.log.Debug("sidebar visibility changed", "visible", visible, "viewport", m.Composer.ViewportWidth())
		id := m.Composer.ID()
		return m, func() tea.Msg { return SidebarVisibilityMsg{ComposerID: id, Visible: visible} }

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Toggle) {
			return m.toggle()
		}

	case sidebarFrameMsg:
		if msg.composerID != m.Composer.ID() || !m.animating {
			return m, nil
		}
		return m.step()
	}
	return m, nil
}

func (m SidebarModel) toggle() (tea.Model, tea.Cmd) {
	from := m.Composer.EffectiveWidth()
	if !m.Composer.ToggleCollapse() {
		return m, nil
	}
	collapsed := m.Composer.Collapsed()
	m.log.Debug("sidebar toggled", "collapsed", collapsed, "width", m.Composer.EffectiveWidth())

	id := m.Composer.ID()
	notify := func() tea.Msg { return SidebarCollapsedMsg{ComposerID: id, Collapsed: collapsed} }
	if m.animating {
		return m, notify
	}
	m.drawn = float64(from)
	m.velocity = 0
	m.animating = true
	return m, tea.Batch(notify, m.frame())
}

func (m SidebarModel) step() (tea.Model, tea.Cmd) {
	target := float64(m.Composer.EffectiveWidth())
	m.drawn, m.velocity = m.spring.Update(m.drawn, m.velocity, target)
	if math.Abs(m.drawn-target) < settleThreshold && math.Abs(m.velocity) < settleThreshold {
		m.drawn = target
		m.velocity = 0
		m.animating = false
		return m, nil
	}
	return m, m.frame()
}

func (m SidebarModel) frame() tea.Cmd {
	id := m.Composer.ID()
	return tea.Tick(time.Second/sidebarFPS, func(time.Time) tea.Msg {
		return sidebarFrameMsg{composerID: id}
	})
}

// Animating reports whether the drawn width is still easing.
func (m SidebarModel) Animating() bool {
	return m.animating
}

// DrawnWidth returns the sidebar width currently drawn, in pixels.
func (m SidebarModel) DrawnWidth() int {
	if !m.animating {
		return m.Composer.EffectiveWidth()
	}
	return int(math.Round(m.drawn))
}

// View implements tea.Model.
func (m SidebarModel) View() string {
	return m.Composer.ViewAt(boundedContext(m.ctx, m.width, m.height), m.DrawnWidth())
}
