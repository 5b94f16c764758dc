package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

// footerLines is the status line plus the short help line.
const footerLines = 2

// headerLines is the story title and a blank line above the preview.
const headerLines = 2

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		frame, cmd := m.frame.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()})
		m.frame = frame.(layout.SidebarModel)
		return m, tea.Batch(cmd, m.resizePreview())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case layout.TabChangedMsg:
		m.state.status = fmt.Sprintf("tab %q selected", msg.TabID)
		return m, nil

	case layout.SidebarCollapsedMsg:
		if msg.ComposerID == m.frame.Composer.ID() {
			return m, nil
		}
		m.state.status = fmt.Sprintf("sidebar collapsed: %t", msg.Collapsed)
		return m, nil

	case layout.SidebarVisibilityMsg:
		if msg.ComposerID == m.frame.Composer.ID() {
			return m, m.resizePreview()
		}
		m.state.status = fmt.Sprintf("sidebar visible: %t", msg.Visible)
		return m, nil

	case layout.CanvasClickMsg:
		switch msg.Hit.Kind {
		case layout.HitCTA:
			m.state.status = "call to action clicked"
		case layout.HitElement:
			m.state.status = fmt.Sprintf("element %q clicked", msg.Hit.ID)
		}
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Sidebar):
		frame, cmd := m.frame.Update(msg)
		m.frame = frame.(layout.SidebarModel)
		return m, tea.Batch(cmd, m.resizePreview())

	case key.Matches(msg, m.Keys.Switch):
		if m.state.focus == FocusList {
			m.state.focus = FocusPreview
		} else {
			m.state.focus = FocusList
		}
		return m, nil
	}

	if m.state.focus == FocusPreview {
		return m.forwardToPreview(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		return m, m.selectStory(m.state.selected - 1)
	case key.Matches(msg, m.Keys.Down):
		return m, m.selectStory(m.state.selected + 1)
	case key.Matches(msg, m.Keys.Open):
		m.state.focus = FocusPreview
	}
	return m, nil
}

// handleMouse moves a mouse event into preview coordinates. Events outside
// the preview area, including the list and the footer, are dropped.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	left, width := m.previewColumns()
	if msg.X < left || msg.X >= left+width || msg.Y < headerLines || msg.Y >= m.bodyHeight() {
		return m, nil
	}
	msg.X -= left
	msg.Y -= headerLines
	return m.forwardToPreview(msg)
}

// selectStory starts a fresh instance of the story at i. Out-of-range
// indexes are ignored.
func (m Model) selectStory(i int) tea.Cmd {
	if i < 0 || i >= len(m.state.stories) || i == m.state.selected {
		return nil
	}
	story := m.state.stories[i]
	m.state.selected = i
	m.state.status = ""
	m.state.preview = story.New(m.ctx, m.log)
	m.log.Debug("story selected", "story", story.Name)

	return tea.Batch(m.state.preview.Init(), m.resizePreview())
}

// forward hands everything else, mostly animation frames, to the frame and
// the running story. Each ignores frames it did not schedule.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	frame, frameCmd := m.frame.Update(msg)
	m.frame = frame.(layout.SidebarModel)

	_, storyCmd := m.forwardToPreview(msg)
	return m, tea.Batch(frameCmd, storyCmd)
}

func (m Model) forwardToPreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.preview == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.state.preview, cmd = m.state.preview.Update(msg)
	return m, cmd
}

func (m Model) resizePreview() tea.Cmd {
	if m.width <= 0 {
		return nil
	}
	_, cmd := m.forwardToPreview(tea.WindowSizeMsg{
		Width:  m.previewWidth(),
		Height: max(0, m.bodyHeight()-headerLines),
	})
	return cmd
}

func (m Model) bodyHeight() int {
	return max(0, m.height-footerLines)
}

// previewWidth mirrors the column split of the framing sidebar at its
// logical width.
func (m Model) previewWidth() int {
	c := m.frame.Composer
	if !c.Visible() {
		return m.width
	}
	cell := m.ctx.Theme.Cell
	side := min(cell.Columns(c.EffectiveWidth()), m.width)
	gap := min(cell.Columns(c.GapPixels()), m.width-side)
	return max(0, m.width-side-gap)
}

// previewColumns returns the first column and width of the preview as drawn,
// following the sidebar while it eases between widths.
func (m Model) previewColumns() (left, width int) {
	c := m.frame.Composer
	if !c.Visible() {
		return 0, m.width
	}
	cell := m.ctx.Theme.Cell
	side := min(cell.Columns(m.frame.DrawnWidth()), m.width)
	gap := min(cell.Columns(c.GapPixels()), m.width-side)
	width = max(0, m.width-side-gap)
	if c.Side() == layout.SideRight {
		return 0, width
	}
	return side + gap, width
}
