package layout

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// canvasFrameInterval paces animation frames. Terminal cells are coarse,
// so a modest rate is enough.
const canvasFrameInterval = time.Second / 12

// CanvasKeyMap holds the key bindings of a CanvasModel.
type CanvasKeyMap struct {
	CTA     key.Binding
	Animate key.Binding
}

// DefaultCanvasKeyMap returns the default bindings.
func DefaultCanvasKeyMap() CanvasKeyMap {
	return CanvasKeyMap{
		CTA:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "call to action")),
		Animate: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle animation")),
	}
}

// ShortHelp implements help.KeyMap.
func (k CanvasKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CTA, k.Animate}
}

// FullHelp implements help.KeyMap.
func (k CanvasKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.CTA, k.Animate}}
}

// CanvasClickMsg is emitted after a click reached a callback target.
type CanvasClickMsg struct {
	CanvasID string
	Hit      Hit
}

type canvasFrameMsg struct {
	canvasID string
	at       time.Time
}

// CanvasModel drives a ScatteredCanvas from bubbletea messages. Frames are
// only scheduled while some element has an active animation.
type CanvasModel struct {
	Canvas *ScatteredCanvas
	Keys   CanvasKeyMap

	ctx     components.RenderContext
	width   int
	height  int
	started time.Time
	elapsed time.Duration
	ticking bool
	log     *logger.Logger
}

// NewCanvasModel wraps canvas.
func NewCanvasModel(canvas *ScatteredCanvas, ctx components.RenderContext, log *logger.Logger) CanvasModel {
	ctx.Theme = ctx.Theme.Normalize()
	return CanvasModel{
		Canvas:  canvas,
		Keys:    DefaultCanvasKeyMap(),
		ctx:     ctx,
		ticking: canvas.HasActiveAnimation(),
		log:     log.Component("canvas"),
	}
}

// Init implements tea.Model.
func (m CanvasModel) Init() tea.Cmd {
	if !m.Canvas.HasActiveAnimation() {
		return nil
	}
	return m.frame()
}

// Update implements tea.Model.
func (m CanvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Canvas.SetViewportWidth(m.ctx.Theme.Cell.PixelWidth(msg.Width))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.CTA):
			return m, m.clicked(Hit{Kind: HitCTA})
		case key.Matches(msg, m.Keys.Animate):
			return m.toggleAnimation()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		hit := m.Canvas.hitTestAt(m.renderContext(), msg.X, msg.Y, m.elapsed)
		return m, m.clicked(hit)

	case canvasFrameMsg:
		if msg.canvasID != m.Canvas.ID() {
			return m, nil
		}
		if !m.Canvas.HasActiveAnimation() {
			m.ticking = false
			return m, nil
		}
		if m.started.IsZero() {
			m.started = msg.at
		}
		m.elapsed = msg.at.Sub(m.started)
		return m, m.frame()
	}
	return m, nil
}

func (m CanvasModel) toggleAnimation() (tea.Model, tea.Cmd) {
	m.Canvas.SetAnimated(!m.Canvas.Animated())
	m.log.Debug("canvas animation toggled", "animated", m.Canvas.Animated())
	if !m.Canvas.HasActiveAnimation() {
		m.elapsed = 0
		m.started = time.Time{}
		return m, nil
	}
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.frame()
}

func (m CanvasModel) clicked(hit Hit) tea.Cmd {
	if !m.Canvas.Activate(hit) {
		return nil
	}
	m.log.Debug("canvas clicked", "kind", int(hit.Kind), "id", hit.ID)
	msg := CanvasClickMsg{CanvasID: m.Canvas.ID(), Hit: hit}
	return func() tea.Msg { return msg }
}

func (m CanvasModel) frame() tea.Cmd {
	id := m.Canvas.ID()
	return tea.Tick(canvasFrameInterval, func(t time.Time) tea.Msg {
		return canvasFrameMsg{canvasID: id, at: t}
	})
}

// Elapsed returns how far the animations have run.
func (m CanvasModel) Elapsed() time.Duration {
	return m.elapsed
}

// View implements tea.Model.
func (m CanvasModel) View() string {
	return m.Canvas.ViewFrame(m.renderContext(), m.elapsed)
}

func (m CanvasModel) renderContext() components.RenderContext {
	return boundedContext(m.ctx, m.width, m.height)
}
