package showcase

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// compactWidth is the list width below which only story numbers are shown.
const compactWidth = 12

// View renders the gallery.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	st := newStyles(m.ctx.Theme, m.state.focus)
	status := m.state.status
	if status == "" {
		status = " "
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.frame.View(),
		st.status.Render(status),
		m.help.View(m.helpKeys()),
	)
}

func (m Model) helpKeys() help.KeyMap {
	if m.state.focus == FocusPreview {
		if keys, ok := storyKeys(m.state.preview); ok {
			return focusedKeys{gallery: m.Keys, story: keys}
		}
	}
	return m.Keys
}

// storyList renders the story names grouped by component.
type storyList struct {
	g *gallery
}

func (l storyList) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l storyList) ViewWithContext(ctx components.RenderContext) string {
	st := newStyles(ctx.Theme, l.g.focus)

	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth < compactWidth {
		rows := make([]string, len(l.g.stories))
		for i := range l.g.stories {
			label := strconv.Itoa(i + 1)
			if i == l.g.selected {
				rows[i] = st.title.Render(label)
			} else {
				rows[i] = st.muted.Render(label)
			}
		}
		return strings.Join(rows, "\n")
	}

	rows := []string{st.title.Render("Stories")}
	group := ""
	for i, s := range l.g.stories {
		if s.Group != group {
			group = s.Group
			rows = append(rows, st.group.Render(strings.ToUpper(group)))
		}
		if i == l.g.selected {
			rows = append(rows, st.selected.Render(s.Name))
		} else {
			rows = append(rows, st.item.Render(s.Name))
		}
	}
	return strings.Join(rows, "\n")
}

// storyPreview renders the running story under its title.
type storyPreview struct {
	g *gallery
}

func (p storyPreview) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

func (p storyPreview) ViewWithContext(ctx components.RenderContext) string {
	st := newStyles(ctx.Theme, p.g.focus)
	if p.g.preview == nil {
		return st.muted.Render("No stories registered.")
	}

	s := p.g.stories[p.g.selected]
	header := st.title.Render(s.Name) + "  " + st.muted.Render(s.Description)
	return header + "\n\n" + p.g.preview.View()
}
