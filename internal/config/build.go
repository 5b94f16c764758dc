package config

import (
	"time"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// BuildTheme layers the document's overrides over the default theme.
func (d *Document) BuildTheme() components.Theme {
	return d.BuildThemeOn(components.DefaultTheme())
}

// BuildThemeOn layers the document's overrides over base.
func (d *Document) BuildThemeOn(base components.Theme) components.Theme {
	theme := base
	if d == nil {
		return theme.Normalize()
	}

	if d.Theme.SpacingUnit > 0 {
		theme = theme.WithSpacingUnit(d.Theme.SpacingUnit)
	}
	if len(d.Theme.Breakpoints) > 0 {
		bp := make(components.Breakpoints, len(d.Theme.Breakpoints))
		for token, px := range d.Theme.Breakpoints {
			bp[components.Breakpoint(token)] = px
		}
		theme = theme.WithBreakpoints(bp)
	}
	if cell := d.Theme.Cell; cell != nil {
		theme = theme.WithCell(components.CellMetric{Width: cell.Width, Height: cell.Height})
	}
	return theme.Normalize()
}

// BuildTabs creates the tab switcher, or nil when the document has no tabs.
func (d *Document) BuildTabs(opts ...layout.TabOption) *layout.TabSwitcher {
	if d == nil || d.Tabs == nil {
		return nil
	}
	spec := d.Tabs

	tabs := make([]layout.TabDescriptor, len(spec.Items))
	for i, item := range spec.Items {
		tabs[i] = layout.TabDescriptor{
			ID:       item.ID,
			Label:    item.Label,
			Icon:     item.Icon,
			IconOnly: item.IconOnly,
			Disabled: item.Disabled,
			Content:  textContent(item.Content),
		}
	}

	orientation, _ := layout.ParseOrientation(spec.Orientation)
	variant, _ := layout.ParseTabVariant(spec.Variant)
	base := []layout.TabOption{
		layout.WithDefaultIndex(spec.DefaultIndex),
		layout.WithOrientation(orientation),
		layout.WithTabVariant(variant),
	}
	return layout.NewTabSwitcher(tabs, append(base, opts...)...)
}

// BuildSidebar creates the sidebar composer around main, or nil when the
// document has no sidebar. A nil main falls back to the sidebar's own main
// text.
func (d *Document) BuildSidebar(theme components.Theme, main ui.Renderable, opts ...layout.SidebarOption) *layout.SidebarComposer {
	if d == nil || d.Sidebar == nil {
		return nil
	}
	spec := d.Sidebar

	if main == nil {
		main = textContent(spec.Main)
	}

	base := []layout.SidebarOption{
		layout.WithCollapsible(spec.Collapsible),
		layout.WithInitiallyCollapsed(spec.Collapsed),
		layout.WithHideOnMobile(spec.HideOnMobile),
	}
	if spec.Width != "" {
		base = append(base, layout.WithWidthPolicy(layout.ParseWidthPolicy(spec.Width)))
	}
	if spec.CollapsedWidth != nil {
		base = append(base, layout.WithCollapsedWidth(*spec.CollapsedWidth))
	}
	if spec.Breakpoint != "" {
		base = append(base, layout.WithBreakpoint(components.Breakpoint(spec.Breakpoint)))
	}
	if spec.Gap != nil {
		base = append(base, layout.WithGap(*spec.Gap))
	}
	if spec.Side == "right" {
		base = append(base, layout.WithSide(layout.SideRight))
	}
	if spec.Role != "" {
		base = append(base, layout.WithSidebarRole(layout.Role(spec.Role)))
	}

	return layout.NewSidebarComposer(theme, textContent(spec.Content), main, append(base, opts...)...)
}

// BuildCanvas creates the scattered canvas, or nil when the document has no
// canvas.
func (d *Document) BuildCanvas(opts ...layout.CanvasOption) (*layout.ScatteredCanvas, error) {
	if d == nil || d.Canvas == nil {
		return nil, nil
	}
	spec := d.Canvas

	elements := make([]layout.FloatingElement, len(spec.Elements))
	for i, el := range spec.Elements {
		var duration time.Duration
		if el.Duration != "" {
			parsed, err := time.ParseDuration(el.Duration)
			if err != nil {
				return nil, layouterrors.NewBuildError(fieldForElement(i, "duration"), err)
			}
			duration = parsed
		}

		elements[i] = layout.FloatingElement{
			ID:      el.ID,
			Content: textContent(el.Content),
			X:       el.X,
			Y:       el.Y,
			Size:    layout.SizeClass(el.Size),
			Style: layout.ElementStyle{
				Background: el.Style.Background,
				Color:      el.Style.Color,
				Radius:     el.Style.Radius,
				Opacity:    el.Style.Opacity,
			},
			Rotation:  el.Rotation,
			Animation: layout.AnimationKind(el.Animation),
			Duration:  duration,
			ZIndex:    el.Z,
		}
	}

	base := []layout.CanvasOption{layout.WithElements(elements...)}
	if spec.Width > 0 {
		base = append(base, layout.WithCanvasWidth(spec.Width))
	}
	if spec.Background != "" {
		base = append(base, layout.WithBackground(spec.Background))
	}
	if spec.Animated != nil {
		base = append(base, layout.WithAnimated(*spec.Animated))
	}
	if m := spec.Main; m != nil {
		base = append(base, layout.WithMainContent(layout.MainContent{
			Title:    m.Title,
			Body:     textContent(m.Body),
			CTALabel: m.CTA,
			Width:    m.Width,
		}))
	}

	return layout.NewScatteredCanvas(spec.Height, append(base, opts...)...), nil
}

// Page holds the live layouts built from a document.
type Page struct {
	Theme   components.Theme
	Tabs    *layout.TabSwitcher
	Sidebar *layout.SidebarComposer
	Canvas  *layout.ScatteredCanvas

	tabsNested bool
}

// BuildPage builds every section with the document theme layered over base.
// When both tabs and a sidebar are present and the sidebar declares no main
// text, the tabs fill the main region; otherwise they follow the sidebar as
// their own section.
func (d *Document) BuildPage(base components.Theme) (*Page, error) {
	page := &Page{Theme: d.BuildThemeOn(base), Tabs: d.BuildTabs()}

	if d.Sidebar != nil {
		var main ui.Renderable
		if d.Sidebar.Main == "" && page.Tabs != nil {
			main = page.Tabs
			page.tabsNested = true
		}
		page.Sidebar = d.BuildSidebar(page.Theme, main)
	}

	canvas, err := d.BuildCanvas()
	if err != nil {
		return nil, err
	}
	page.Canvas = canvas
	return page, nil
}

// SetViewportWidth forwards a viewport width in pixels to every layout that
// reacts to it.
func (p *Page) SetViewportWidth(px int) {
	if p.Sidebar != nil {
		p.Sidebar.SetViewportWidth(px)
	}
	if p.Canvas != nil {
		p.Canvas.SetViewportWidth(px)
	}
}

// Sections returns the top-level renderables in display order.
func (p *Page) Sections() []ui.Renderable {
	var sections []ui.Renderable
	if p.Sidebar != nil {
		sections = append(sections, p.Sidebar)
	}
	if p.Tabs != nil && !p.tabsNested {
		sections = append(sections, p.Tabs)
	}
	if p.Canvas != nil {
		sections = append(sections, p.Canvas)
	}
	return sections
}

// View renders the page statically within ctx.
func (p *Page) View(ctx components.RenderContext) string {
	return components.VStack(p.Sections()...).WithGap(1).ViewWithContext(ctx)
}

func textContent(s string) ui.Renderable {
	if s == "" {
		return nil
	}
	return components.NewText(s)
}
