package components

import (
	"strings"
)

// Divider renders a separator line of a fixed length in cells.
type Divider struct {
	BaseComponent
	char      string
	length    int
	direction Direction
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider(length int) *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		length:        length,
		direction:     DirectionHorizontal,
	}
}

// VerticalDivider creates a vertical divider.
func VerticalDivider(length int) *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "│",
		length:        length,
		direction:     DirectionVertical,
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider, defaulting its length to the
// constrained width when none was set.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 && d.direction == DirectionHorizontal && ctx.Constraints.HasWidth() {
		length = ctx.Constraints.MaxWidth
	}
	if length <= 0 {
		return ""
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Neutral.Muted)
	if d.direction == DirectionHorizontal {
		return style.Render(strings.Repeat(d.char, length))
	}
	lines := make([]string, length)
	for i := range lines {
		lines[i] = d.char
	}
	return style.Render(strings.Join(lines, "\n"))
}

// WithChar sets the character used to draw the line.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

// Length returns the configured length in cells.
func (d *Divider) Length() int {
	return d.length
}
