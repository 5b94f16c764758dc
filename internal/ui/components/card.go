package components

import (
	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered, padded box grouping related content under an
// optional title.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
	padding  Spacing
	border   BorderVariant
	width    int
}

// NewCard creates a new card with rounded border and one cell of padding.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
		padding:       SymmetricSpacing(0, 1),
		border:        BorderVariantRounded,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with layout context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	body := make([]ui.Renderable, 0, len(c.children)+1)
	if c.title != "" {
		body = append(body, TitleText(c.title))
	}
	body = append(body, c.children...)

	inner := ctx
	if c.width > 0 {
		inner = ctx.WithConstraints(Bounded(c.contentWidth(), -1))
	}
	content := VStack(body...).ViewWithContext(inner)

	style := c.ComputeStyle(ctx.Theme)
	if c.border != BorderVariantNone {
		style = style.Border(BorderForVariant(ctx.Theme, c.border)).
			BorderForeground(ctx.Theme.Palette.Neutral.Base)
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if c.width > 0 {
		style = style.Width(c.width - c.frameWidth())
	}
	return style.Render(content)
}

func (c *Card) frameWidth() int {
	if c.border == BorderVariantNone {
		return 0
	}
	return 2
}

func (c *Card) contentWidth() int {
	w := c.width - c.frameWidth() - c.padding.Horizontal()
	if w < 0 {
		return 0
	}
	return w
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithPadding sets the inner padding in cells.
func (c *Card) WithPadding(padding Spacing) *Card {
	c.padding = padding
	return c
}

// WithBorder sets the border variant.
func (c *Card) WithBorder(border BorderVariant) *Card {
	c.border = border
	return c
}

// WithWidth fixes the outer width of the card in cells.
func (c *Card) WithWidth(cells int) *Card {
	c.width = cells
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.SetAppliers(appliers...)
	return c
}

// Add appends children to the card.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Children returns the card's content.
func (c *Card) Children() []ui.Renderable {
	return c.children
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// Size returns the rendered width and height in cells.
func (c *Card) Size(ctx RenderContext) (int, int) {
	return lipgloss.Size(c.ViewWithContext(ctx))
}
