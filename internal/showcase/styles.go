package showcase

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

type styles struct {
	group    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
	status   lipgloss.Style
}

func newStyles(theme components.Theme, focus Focus) styles {
	p := theme.Palette
	s := styles{
		group:    lipgloss.NewStyle().Bold(true).Foreground(p.Neutral.Base).MarginTop(1),
		item:     lipgloss.NewStyle().PaddingLeft(2),
		selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(p.Primary.Base).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(p.Primary.Base),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
		muted:    lipgloss.NewStyle().Foreground(p.Neutral.Muted),
		status:   lipgloss.NewStyle().Foreground(p.Secondary.Base),
	}
	if focus == FocusPreview {
		s.selected = s.selected.Foreground(p.Neutral.Base).BorderForeground(p.Neutral.Muted)
	}
	return s
}
