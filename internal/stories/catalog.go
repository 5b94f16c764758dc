package stories

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

func panel(title, body string) ui.Renderable {
	return components.VStack(
		components.SubtitleText(title),
		components.NewText(body),
	).WithGap(1)
}

func tabsBasic(ctx components.RenderContext, log *logger.Logger) tea.Model {
	sw := layout.NewTabSwitcher([]layout.TabDescriptor{
		{ID: "overview", Label: "Overview", Content: panel("Overview", "Tabs switch between related panels.")},
		{ID: "usage", Label: "Usage", Content: panel("Usage", "Use ←/→ to move and enter to open.")},
		{ID: "api", Label: "API", Content: panel("API", "Select, GoTo, and OnTabChange.")},
	})
	return layout.NewTabsModel(sw, ctx, log)
}

func tabsDisabled(ctx components.RenderContext, log *logger.Logger) tea.Model {
	sw := layout.NewTabSwitcher([]layout.TabDescriptor{
		{ID: "active", Label: "Active", Content: panel("Active", "This tab is available.")},
		{ID: "disabled", Label: "Disabled", Disabled: true, Content: panel("Disabled", "Never shown.")},
		{ID: "next", Label: "Next", Content: panel("Next", "Navigation skipped the disabled tab.")},
	})
	return layout.NewTabsModel(sw, ctx, log)
}

func tabsVertical(ctx components.RenderContext, log *logger.Logger) tea.Model {
	sw := layout.NewTabSwitcher([]layout.TabDescriptor{
		{ID: "profile", Label: "Profile", Content: panel("Profile", "Name, avatar, and bio.")},
		{ID: "account", Label: "Account", Content: panel("Account", "Email and password.")},
		{ID: "billing", Label: "Billing", Content: panel("Billing", "Plan and invoices.")},
		{ID: "alerts", Label: "Alerts", Content: panel("Alerts", "Choose what reaches you.")},
	}, layout.WithOrientation(layout.OrientationVertical))
	return layout.NewTabsModel(sw, ctx, log)
}

func tabsScrollable(ctx components.RenderContext, log *logger.Logger) tea.Model {
	tabs := make([]layout.TabDescriptor, 12)
	for i := range tabs {
		label := fmt.Sprintf("Section %d", i+1)
		tabs[i] = layout.TabDescriptor{
			ID:      fmt.Sprintf("section-%d", i+1),
			Label:   label,
			Content: panel(label, "Focus follows the selection and the strip scrolls to keep it in view."),
		}
	}
	sw := layout.NewTabSwitcher(tabs, layout.WithTabVariant(layout.TabVariantScrollable))
	return layout.NewTabsModel(sw, ctx, log)
}

func tabsIcons(ctx components.RenderContext, log *logger.Logger) tea.Model {
	sw := layout.NewTabSwitcher([]layout.TabDescriptor{
		{ID: "home", Label: "Home", Icon: "⌂", Content: panel("Home", "Icon with label.")},
		{ID: "search", Label: "Search", Icon: "⌕", IconOnly: true, Content: panel("Search", "Icon only; the label stays the accessible name.")},
		{ID: "settings", Label: "Settings", Icon: "⚙", IconOnly: true, Content: panel("Settings", "Icon only.")},
	}, layout.WithTabVariant(layout.TabVariantFullWidth))
	return layout.NewTabsModel(sw, ctx, log)
}

func navigation() ui.Renderable {
	return components.VStack(
		components.SubtitleText("Menu"),
		components.NewText("Dashboard"),
		components.NewText("Projects"),
		components.NewText("Reports"),
		components.MutedText("Settings"),
	)
}

func mainArticle() ui.Renderable {
	return components.NewCard(
		components.NewText("The main region takes the space the sidebar leaves."),
		components.MutedText("Resize the terminal to watch it reflow."),
	).WithTitle("Main content")
}

func sidebarBasic(ctx components.RenderContext, log *logger.Logger) tea.Model {
	s := layout.NewSidebarComposer(ctx.Theme, navigation(), mainArticle(),
		layout.WithSidebarRole(layout.RoleNavigation),
	)
	return layout.NewSidebarModel(s, ctx, log)
}

func sidebarCollapsible(ctx components.RenderContext, log *logger.Logger) tea.Model {
	s := layout.NewSidebarComposer(ctx.Theme, navigation(), mainArticle(),
		layout.WithWidthPolicy(layout.PresetWidth(layout.PresetNarrow)),
		layout.WithCollapsible(true),
		layout.WithSidebarRole(layout.RoleNavigation),
	)
	return layout.NewSidebarModel(s, ctx, log)
}

func sidebarResponsive(ctx components.RenderContext, log *logger.Logger) tea.Model {
	s := layout.NewSidebarComposer(ctx.Theme, navigation(), mainArticle(),
		layout.WithWidthPolicy(layout.PresetWidth(layout.PresetWide)),
		layout.WithHideOnMobile(true),
		layout.WithBreakpoint(components.BreakpointMD),
	)
	return layout.NewSidebarModel(s, ctx, log)
}

func heroElements() []layout.FloatingElement {
	return []layout.FloatingElement{
		{ID: "sun", X: 12, Y: 18, Size: layout.SizeLarge, Animation: layout.AnimationFloat, Duration: 4 * time.Second, ZIndex: 1},
		{ID: "spark", X: 85, Y: 22, Size: layout.SizeSmall, Animation: layout.AnimationPulse, Duration: 2 * time.Second, ZIndex: 3},
		{ID: "moon", X: 78, Y: 78, Size: layout.SizeMedium, Animation: layout.AnimationRotate, ZIndex: 2},
		{ID: "star", Content: ui.Text("★"), X: 22, Y: 80, Size: layout.SizeSmall, Animation: layout.AnimationFloat, ZIndex: 2},
		{X: 50, Y: 8, Size: layout.SizeSmall, Style: layout.ElementStyle{Opacity: 0.3}},
	}
}

func hero(animated bool, log *logger.Logger) *layout.ScatteredCanvas {
	log = log.Component("hero")
	return layout.NewScatteredCanvas(320,
		layout.WithElements(heroElements()...),
		layout.WithAnimated(animated),
		layout.WithMainContent(layout.MainContent{
			Title:    "Build with layouts",
			Body:     components.NewText("Tabs, sidebars, and scattered canvases."),
			CTALabel: "Get started",
		}),
		layout.OnCtaClick(func() { log.Debug("call to action clicked") }),
		layout.OnElementClick(func(id string) { log.Debug("element clicked", "id", id) }),
	)
}

func canvasHero(ctx components.RenderContext, log *logger.Logger) tea.Model {
	return layout.NewCanvasModel(hero(true, log), ctx, log)
}

func canvasStatic(ctx components.RenderContext, log *logger.Logger) tea.Model {
	return layout.NewCanvasModel(hero(false, log), ctx, log)
}
