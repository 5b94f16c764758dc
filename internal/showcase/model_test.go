package showcase

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/stories"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

func newTestModel(t *testing.T, start string) Model {
	t.Helper()

	m, err := New(stories.Default(), start, components.DefaultContext(), nil)
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// locate returns the screen column and row where text is drawn.
func locate(t *testing.T, view, text string) (int, int) {
	t.Helper()

	for row, line := range strings.Split(ansi.Strip(view), "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return ansi.StringWidth(line[:i]), row
		}
	}
	require.FailNow(t, "text not on screen", text)
	return 0, 0
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewRejectsUnknownStory(t *testing.T) {
	t.Parallel()

	_, err := New(stories.Default(), "canvas-hreo", components.DefaultContext(), nil)
	var lookupErr *layouterrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "canvas-hero", lookupErr.Suggestion)
}

func TestNewSelectsStartStory(t *testing.T) {
	t.Parallel()

	m, err := New(stories.Default(), "canvas-hero", components.DefaultContext(), nil)
	require.NoError(t, err)
	s, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "canvas-hero", s.Name)
	require.NotNil(t, m.Init(), "animated story schedules frames")

	m, err = New(stories.Default(), "", components.DefaultContext(), nil)
	require.NoError(t, err)
	s, _ = m.Selected()
	require.Equal(t, "tabs-basic", s.Name)
}

func TestViewShowsListAndPreview(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	out := ansi.Strip(m.View())
	require.Contains(t, out, "Stories")
	require.Contains(t, out, "TABS")
	require.Contains(t, out, "canvas-static")
	require.Contains(t, out, "Three labelled tabs")
	require.Contains(t, out, "Overview")
	require.Contains(t, out, "next story")
}

func TestViewBeforeResize(t *testing.T) {
	t.Parallel()

	m, err := New(stories.Default(), "", components.DefaultContext(), nil)
	require.NoError(t, err)
	require.Equal(t, "Initializing...", m.View())
}

func TestListNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")

	m, _ = send(t, m, keyRunes("k"))
	s, _ := m.Selected()
	require.Equal(t, "tabs-basic", s.Name, "no wrap above the first story")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	s, _ = m.Selected()
	require.Equal(t, "tabs-disabled", s.Name)
	require.True(t, m.Preview().(layout.TabsModel).Switcher.Tabs()[1].Disabled)

	require.Contains(t, ansi.Strip(m.View()), "A disabled tab is skipped")
}

func TestPreviewFocusForwardsKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, FocusPreview, m.Focus())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	tabs := m.Preview().(layout.TabsModel)
	require.Equal(t, 1, tabs.Switcher.ActiveIndex())

	m, _ = send(t, m, cmd())
	require.Equal(t, `tab "usage" selected`, m.Status())
	require.Contains(t, ansi.Strip(m.View()), "open tab", "story bindings show in the footer")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusList, m.Focus())
}

func TestSidebarToggleCollapsesList(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	wide := m.previewWidth()

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.NotNil(t, cmd)
	require.True(t, m.Composer().Collapsed())
	require.Greater(t, m.previewWidth(), wide)
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	require.NotContains(t, ansi.Strip(m.View()), "toggle list")

	m, _ = send(t, m, keyRunes("?"))
	require.Contains(t, ansi.Strip(m.View()), "toggle list")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	_, cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCanvasClicksReachStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "canvas-static")
	m, _ = send(t, m, layout.CanvasClickMsg{Hit: layout.Hit{Kind: layout.HitElement, ID: "sun"}})
	require.Equal(t, `element "sun" clicked`, m.Status())

	m, _ = send(t, m, layout.CanvasClickMsg{Hit: layout.Hit{Kind: layout.HitCTA}})
	require.Equal(t, "call to action clicked", m.Status())
}

func TestMouseClickOnCallToAction(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "canvas-static")
	col, row := locate(t, m.View(), "Get started")

	_, cmd := send(t, m, leftPress(col+1, row))
	require.NotNil(t, cmd, "click lands on the drawn call to action")
	msg := cmd()
	click, ok := msg.(layout.CanvasClickMsg)
	require.True(t, ok)
	require.Equal(t, layout.HitCTA, click.Hit.Kind)

	m, _ = send(t, m, msg)
	require.Equal(t, "call to action clicked", m.Status())
}

func TestMouseClickOutsidePreviewIsDropped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "canvas-static")
	col, row := locate(t, m.View(), "Get started")

	cases := []struct {
		name string
		x, y int
	}{
		{name: "story list", x: 1, y: row},
		{name: "preview header", x: col + 1, y: 0},
		{name: "footer", x: col + 1, y: 29},
	}
	for _, tc := range cases {
		_, cmd := send(t, m, leftPress(tc.x, tc.y))
		require.Nil(t, cmd, tc.name)
	}
	require.Empty(t, m.Status())
}
