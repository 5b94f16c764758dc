package layout

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// WidthPreset names a fixed sidebar width.
type WidthPreset string

const (
	PresetNarrow   WidthPreset = "narrow"
	PresetStandard WidthPreset = "standard"
	PresetWide     WidthPreset = "wide"
)

var presetWidths = map[WidthPreset]int{
	PresetNarrow:   200,
	PresetStandard: 280,
	PresetWide:     360,
}

// Presets returns every known preset, narrowest first.
func Presets() []WidthPreset {
	return []WidthPreset{PresetNarrow, PresetStandard, PresetWide}
}

// Valid reports whether p is a known preset.
func (p WidthPreset) Valid() bool {
	_, ok := presetWidths[p]
	return ok
}

// Pixels returns the preset width. Unknown presets resolve to standard.
func (p WidthPreset) Pixels() int {
	if px, ok := presetWidths[p]; ok {
		return px
	}
	return presetWidths[PresetStandard]
}

// WidthPolicy is either a named preset or an explicit pixel width.
type WidthPolicy struct {
	preset   WidthPreset
	pixels   int
	explicit bool
}

// PresetWidth returns a policy resolving to a named preset.
func PresetWidth(p WidthPreset) WidthPolicy {
	return WidthPolicy{preset: p}
}

// PixelWidth returns a policy resolving to px exactly. Zero and negative
// values are used as supplied.
func PixelWidth(px int) WidthPolicy {
	return WidthPolicy{pixels: px, explicit: true}
}

// ParseWidthPolicy accepts a preset name or an integer pixel count.
func ParseWidthPolicy(s string) WidthPolicy {
	s = strings.TrimSpace(s)
	if px, err := strconv.Atoi(strings.TrimSuffix(s, "px")); err == nil {
		return PixelWidth(px)
	}
	return PresetWidth(WidthPreset(strings.ToLower(s)))
}

// Resolve returns the width in pixels.
func (w WidthPolicy) Resolve() int {
	if w.explicit {
		return w.pixels
	}
	return w.preset.Pixels()
}

// IsExplicit reports whether the policy is a pixel number.
func (w WidthPolicy) IsExplicit() bool {
	return w.explicit
}

// Preset returns the named preset, empty for explicit widths.
func (w WidthPolicy) Preset() WidthPreset {
	return w.preset
}

func (w WidthPolicy) String() string {
	if w.explicit {
		return strconv.Itoa(w.pixels) + "px"
	}
	if w.preset == "" {
		return string(PresetStandard)
	}
	return string(w.preset)
}

// Side selects which edge the sidebar sits on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// DefaultCollapsedWidth is the collapsed sidebar width in pixels.
const DefaultCollapsedWidth = 64

// SidebarOption configures a SidebarComposer.
type SidebarOption func(*SidebarComposer)

// WithWidthPolicy sets the expanded width policy.
func WithWidthPolicy(p WidthPolicy) SidebarOption {
	return func(s *SidebarComposer) { s.policy = p }
}

// WithCollapsible enables the collapse toggle.
func WithCollapsible(collapsible bool) SidebarOption {
	return func(s *SidebarComposer) { s.collapsible = collapsible }
}

// WithCollapsedWidth sets the width used while collapsed.
func WithCollapsedWidth(px int) SidebarOption {
	return func(s *SidebarComposer) { s.collapsedWidth = px }
}

// WithInitiallyCollapsed starts the sidebar collapsed. Ignored unless the
// sidebar is collapsible.
func WithInitiallyCollapsed(collapsed bool) SidebarOption {
	return func(s *SidebarComposer) { s.collapsed = collapsed }
}

// WithHideOnMobile omits the sidebar at or below the breakpoint.
func WithHideOnMobile(hide bool) SidebarOption {
	return func(s *SidebarComposer) { s.hideOnMobile = hide }
}

// WithBreakpoint sets the breakpoint token consulted for hideOnMobile.
func WithBreakpoint(bp components.Breakpoint) SidebarOption {
	return func(s *SidebarComposer) { s.breakpoint = bp }
}

// WithGap sets the gap between regions in theme spacing units.
func WithGap(units int) SidebarOption {
	return func(s *SidebarComposer) { s.gapUnits = units }
}

// WithSide places the sidebar on the left or right edge.
func WithSide(side Side) SidebarOption {
	return func(s *SidebarComposer) { s.side = side }
}

// WithSidebarRole sets the landmark role of the sidebar region.
// Only RoleComplementary and RoleNavigation are accepted.
func WithSidebarRole(role Role) SidebarOption {
	return func(s *SidebarComposer) {
		if role == RoleComplementary || role == RoleNavigation {
			s.role = role
		}
	}
}

// OnCollapseChange registers the callback fired when the user toggles the
// collapsed state.
func OnCollapseChange(fn func(collapsed bool)) SidebarOption {
	return func(s *SidebarComposer) { s.onCollapse = fn }
}

// SidebarComposer lays out a fixed-width sidebar beside a flexible main
// region. Visibility is derived from the last viewport width on every call
// and never cached.
type SidebarComposer struct {
	id             string
	sidebar        ui.Renderable
	main           ui.Renderable
	policy         WidthPolicy
	collapsible    bool
	collapsed      bool
	collapsedWidth int
	hideOnMobile   bool
	breakpoint     components.Breakpoint
	breakpoints    components.Breakpoints
	spacingUnit    int
	gapUnits       int
	side           Side
	role           Role
	viewport       int
	onCollapse     func(bool)
}

// NewSidebarComposer creates a composer. The theme supplies the breakpoint
// table and spacing unit; it is captured here rather than looked up later.
func NewSidebarComposer(theme components.Theme, sidebar, main ui.Renderable, opts ...SidebarOption) *SidebarComposer {
	theme = theme.Normalize()
	s := &SidebarComposer{
		id:             newInstanceID("sidebar"),
		sidebar:        sidebar,
		main:           main,
		policy:         PresetWidth(PresetStandard),
		collapsedWidth: DefaultCollapsedWidth,
		breakpoint:     components.DefaultBreakpoint,
		breakpoints:    theme.Breakpoints,
		spacingUnit:    theme.SpacingUnit,
		gapUnits:       2,
		role:           RoleComplementary,
		viewport:       -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.collapsible {
		s.collapsed = false
	}
	return s
}

// ID returns the instance identifier.
func (s *SidebarComposer) ID() string {
	return s.id
}

// Policy returns the expanded width policy.
func (s *SidebarComposer) Policy() WidthPolicy {
	return s.policy
}

// Collapsible reports whether the collapse toggle is available.
func (s *SidebarComposer) Collapsible() bool {
	return s.collapsible
}

// Side returns the edge the sidebar is drawn on.
func (s *SidebarComposer) Side() Side {
	return s.side
}

// Collapsed reports the collapsed state. Always false when not collapsible.
func (s *SidebarComposer) Collapsed() bool {
	return s.collapsed
}

// EffectiveWidth returns the sidebar width in pixels for the current state.
func (s *SidebarComposer) EffectiveWidth() int {
	if s.collapsed {
		return s.collapsedWidth
	}
	return s.policy.Resolve()
}

// ToggleCollapse flips the collapsed state on user request. It reports
// whether anything changed; non-collapsible sidebars never change.
func (s *SidebarComposer) ToggleCollapse() bool {
	if !s.collapsible {
		return false
	}
	s.collapsed = !s.collapsed
	if s.onCollapse != nil {
		s.onCollapse(s.collapsed)
	}
	return true
}

// SetCollapsed sets the collapsed state on behalf of the caller without
// firing the callback.
func (s *SidebarComposer) SetCollapsed(collapsed bool) {
	s.collapsed = s.collapsible && collapsed
}

// SetViewportWidth records the viewport width in pixels and returns the
// resulting visibility. Calling it repeatedly with the same width is
// harmless.
func (s *SidebarComposer) SetViewportWidth(px int) bool {
	s.viewport = px
	return s.Visible()
}

// ViewportWidth returns the last recorded viewport width, or -1.
func (s *SidebarComposer) ViewportWidth() int {
	return s.viewport
}

// BreakpointPixels returns the threshold of the configured breakpoint.
func (s *SidebarComposer) BreakpointPixels() int {
	px, _ := s.breakpoints.Threshold(s.breakpoint)
	return px
}

// Visible reports whether the sidebar region is part of the layout. With
// hideOnMobile set, a viewport at or below the breakpoint hides it. An
// unknown viewport counts as wide.
func (s *SidebarComposer) Visible() bool {
	if !s.hideOnMobile || s.viewport < 0 {
		return true
	}
	return s.viewport > s.BreakpointPixels()
}

// GapPixels returns the gap between regions in pixels.
func (s *SidebarComposer) GapPixels() int {
	return s.gapUnits * s.spacingUnit
}

// MainWidth returns the pixels left for the main region, or -1 when the
// viewport is unknown.
func (s *SidebarComposer) MainWidth() int {
	if s.viewport < 0 {
		return -1
	}
	if !s.Visible() {
		return s.viewport
	}
	return max(s.viewport-s.EffectiveWidth()-s.GapPixels(), 0)
}

// Region describes one laid-out area. Width is -1 for the flexible region.
type Region struct {
	ID    string
	Role  Role
	Width int
}

// Regions returns the regions in visual order. The sidebar is absent when
// hidden.
func (s *SidebarComposer) Regions() []Region {
	mainRegion := Region{ID: s.id + "-main", Role: RoleMain, Width: -1}
	if !s.Visible() {
		return []Region{mainRegion}
	}
	side := Region{ID: s.id + "-sidebar", Role: s.role, Width: s.EffectiveWidth()}
	if s.side == SideRight {
		return []Region{mainRegion, side}
	}
	return []Region{side, mainRegion}
}

// Accessibility returns the landmark tree. Landmark roles do not depend on
// the collapsed state.
func (s *SidebarComposer) Accessibility() Node {
	root := Node{ID: s.id, Role: RolePresentation}
	for _, region := range s.Regions() {
		node := Node{ID: region.ID, Role: region.Role}
		if region.Role == RoleMain {
			node.Label = "main content"
		} else {
			node.Label = "sidebar"
			if s.collapsible {
				node.Children = []Node{{
					ID:        s.id + "-toggle",
					Role:      RoleButton,
					Label:     s.toggleLabel(),
					Focusable: true,
					Controls:  region.ID,
				}}
			}
		}
		root.Children = append(root.Children, node)
	}
	return root
}

func (s *SidebarComposer) toggleLabel() string {
	if s.collapsed {
		return "expand sidebar"
	}
	return "collapse sidebar"
}

// View renders the composer with the default theme.
func (s *SidebarComposer) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders both regions at the logical sidebar width.
func (s *SidebarComposer) ViewWithContext(ctx components.RenderContext) string {
	return s.ViewAt(ctx, s.EffectiveWidth())
}

// ViewAt renders the layout with the sidebar drawn sidebarPx wide. Models
// use it to present an eased width while the logical width has already
// changed.
func (s *SidebarComposer) ViewAt(ctx components.RenderContext, sidebarPx int) string {
	cell := ctx.Theme.Cell
	if cell.IsZero() {
		cell = components.DefaultCellMetric()
	}

	total := -1
	switch {
	case ctx.Constraints.HasWidth():
		total = ctx.Constraints.MaxWidth
	case s.viewport >= 0:
		total = cell.Columns(s.viewport)
	}
	height := ctx.Constraints.MaxHeight

	if !s.Visible() {
		return components.Render(s.main, ctx.WithConstraints(components.Bounded(total, height)))
	}

	sideCols := cell.Columns(sidebarPx)
	gapCols := cell.Columns(s.GapPixels())
	if total >= 0 {
		sideCols = min(sideCols, total)
		gapCols = min(gapCols, total-sideCols)
	}

	sideView := s.renderSidebar(ctx, sideCols, height)

	mainCols := -1
	if total >= 0 {
		mainCols = total - sideCols - gapCols
	}
	mainView := ""
	if mainCols != 0 {
		mainView = components.Render(s.main, ctx.WithConstraints(components.Bounded(mainCols, height)))
		if mainCols > 0 {
			mainView = lipgloss.NewStyle().Width(mainCols).Render(mainView)
		}
	}

	gap := lipgloss.NewStyle().Width(gapCols).Render("")
	if s.side == SideRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, mainView, gap, sideView)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sideView, gap, mainView)
}

func (s *SidebarComposer) renderSidebar(ctx components.RenderContext, cols, height int) string {
	if cols <= 0 {
		return ""
	}

	var rows []string
	contentHeight := height
	if s.collapsible {
		expand, collapse := "»", "«"
		if s.side == SideRight {
			expand, collapse = collapse, expand
		}
		glyph := collapse
		if s.collapsed {
			glyph = expand
		}
		rows = append(rows, lipgloss.NewStyle().
			Width(cols).
			Align(lipgloss.Right).
			Foreground(ctx.Theme.Palette.Neutral.Base).
			Render(glyph))
		if contentHeight > 0 {
			contentHeight--
		}
	}
	if content := components.Render(s.sidebar, ctx.WithConstraints(components.Bounded(cols, contentHeight))); content != "" {
		rows = append(rows, content)
	}

	return lipgloss.NewStyle().
		Width(cols).
		MaxWidth(cols).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
