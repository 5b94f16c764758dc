package layout

import (
	"strings"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Orientation is the axis the tab strip runs along.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps a configuration token to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return OrientationHorizontal, true
	case "vertical":
		return OrientationVertical, true
	default:
		return OrientationHorizontal, false
	}
}

// TabVariant controls how the strip handles tabs wider than its container.
type TabVariant int

const (
	// TabVariantStandard sizes tabs to their labels and truncates overflow.
	TabVariantStandard TabVariant = iota
	// TabVariantScrollable keeps the focused tab in view and shows
	// navigation markers when tabs overflow.
	TabVariantScrollable
	// TabVariantFullWidth splits the container evenly between tabs.
	TabVariantFullWidth
)

func (v TabVariant) String() string {
	switch v {
	case TabVariantScrollable:
		return "scrollable"
	case TabVariantFullWidth:
		return "fullWidth"
	default:
		return "standard"
	}
}

// ParseTabVariant maps a configuration token to a TabVariant.
func ParseTabVariant(s string) (TabVariant, bool) {
	switch strings.ToLower(s) {
	case "", "standard":
		return TabVariantStandard, true
	case "scrollable":
		return TabVariantScrollable, true
	case "fullwidth", "full_width", "full-width":
		return TabVariantFullWidth, true
	default:
		return TabVariantStandard, false
	}
}

// TabDescriptor describes one tab. Descriptors are never mutated by the
// switcher.
type TabDescriptor struct {
	ID       string
	Label    string
	Icon     string
	IconOnly bool
	Disabled bool
	Content  ui.Renderable
}

func (d TabDescriptor) displayLabel() string {
	switch {
	case d.Icon != "" && d.IconOnly:
		return d.Icon
	case d.Icon != "":
		return d.Icon + " " + d.Label
	default:
		return d.Label
	}
}

func (d TabDescriptor) accessibleName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.ID
}

// TabOption configures a TabSwitcher.
type TabOption func(*TabSwitcher)

// WithDefaultIndex sets the initially active tab. Out-of-range values are
// clamped.
func WithDefaultIndex(index int) TabOption {
	return func(t *TabSwitcher) {
		t.defaultIndex = index
	}
}

// WithOrientation sets the strip orientation.
func WithOrientation(o Orientation) TabOption {
	return func(t *TabSwitcher) {
		t.orientation = o
	}
}

// WithTabVariant sets the overflow behaviour.
func WithTabVariant(v TabVariant) TabOption {
	return func(t *TabSwitcher) {
		t.variant = v
	}
}

// OnTabChange registers the callback fired after a user selection changes
// the active tab.
func OnTabChange(fn func(index int)) TabOption {
	return func(t *TabSwitcher) {
		t.onChange = fn
	}
}

const (
	tabPadding        = 1
	scrollMarkerWidth = 2
)

// TabSwitcher holds the active tab and renders the strip plus the single
// active panel. Only the active panel's content is ever rendered.
type TabSwitcher struct {
	id           string
	tabs         []TabDescriptor
	active       int
	focus        int
	defaultIndex int
	orientation  Orientation
	variant      TabVariant
	onChange     func(int)
}

// NewTabSwitcher creates a switcher over tabs. With no tabs there is no
// selection and no panel.
func NewTabSwitcher(tabs []TabDescriptor, opts ...TabOption) *TabSwitcher {
	t := &TabSwitcher{
		id:     newInstanceID("tabs"),
		tabs:   append([]TabDescriptor(nil), tabs...),
		active: -1,
		focus:  -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.tabs) > 0 {
		t.active = clamp(t.defaultIndex, 0, len(t.tabs)-1)
		t.focus = t.active
	}
	return t
}

// ID returns the instance identifier used to prefix accessibility ids.
func (t *TabSwitcher) ID() string {
	return t.id
}

// Len returns the number of tabs.
func (t *TabSwitcher) Len() int {
	return len(t.tabs)
}

// Tabs returns a copy of the descriptors in display order.
func (t *TabSwitcher) Tabs() []TabDescriptor {
	return append([]TabDescriptor(nil), t.tabs...)
}

// Orientation returns the strip orientation.
func (t *TabSwitcher) Orientation() Orientation {
	return t.orientation
}

// Variant returns the overflow variant.
func (t *TabSwitcher) Variant() TabVariant {
	return t.variant
}

// ActiveIndex returns the active tab index, or -1 when there are no tabs.
func (t *TabSwitcher) ActiveIndex() int {
	return t.active
}

// ActiveTab returns the active descriptor.
func (t *TabSwitcher) ActiveTab() (TabDescriptor, bool) {
	if t.active < 0 {
		return TabDescriptor{}, false
	}
	return t.tabs[t.active], true
}

// FocusedIndex returns the tab holding keyboard focus, or -1.
func (t *TabSwitcher) FocusedIndex() int {
	return t.focus
}

// Select makes tab i active. Invalid indices, disabled tabs, and the
// already-active tab are no-ops. It reports whether the selection changed;
// the change callback fires only when it did.
func (t *TabSwitcher) Select(i int) bool {
	if !t.selectable(i) || i == t.active {
		return false
	}
	t.active = i
	t.focus = i
	if t.onChange != nil {
		t.onChange(i)
	}
	return true
}

// SelectID selects the tab with the given id.
func (t *TabSwitcher) SelectID(id string) bool {
	return t.Select(t.IndexOf(id))
}

// GoTo moves the selection on behalf of the caller. It follows the same
// rules as Select but does not fire the change callback, which reports
// user-driven transitions only.
func (t *TabSwitcher) GoTo(i int) bool {
	if !t.selectable(i) || i == t.active {
		return false
	}
	t.active = i
	t.focus = i
	return true
}

// IndexOf returns the index of the tab with id, or -1.
func (t *TabSwitcher) IndexOf(id string) int {
	for i, tab := range t.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func (t *TabSwitcher) selectable(i int) bool {
	return i >= 0 && i < len(t.tabs) && !t.tabs[i].Disabled
}

// FocusNext moves focus to the next enabled tab, wrapping at the end.
// Selection is unchanged.
func (t *TabSwitcher) FocusNext() bool {
	return t.moveFocus(1)
}

// FocusPrev moves focus to the previous enabled tab, wrapping at the start.
func (t *TabSwitcher) FocusPrev() bool {
	return t.moveFocus(-1)
}

// FocusFirst moves focus to the first enabled tab.
func (t *TabSwitcher) FocusFirst() bool {
	for i := range t.tabs {
		if t.selectable(i) {
			return t.setFocus(i)
		}
	}
	return false
}

// FocusLast moves focus to the last enabled tab.
func (t *TabSwitcher) FocusLast() bool {
	for i := len(t.tabs) - 1; i >= 0; i-- {
		if t.selectable(i) {
			return t.setFocus(i)
		}
	}
	return false
}

// Activate selects the focused tab.
func (t *TabSwitcher) Activate() bool {
	return t.Select(t.focus)
}

func (t *TabSwitcher) moveFocus(step int) bool {
	n := len(t.tabs)
	if n == 0 {
		return false
	}
	start := t.focus
	if start < 0 {
		start = 0
	}
	for k := 1; k <= n; k++ {
		i := ((start+step*k)%n + n) % n
		if t.selectable(i) {
			return t.setFocus(i)
		}
	}
	return false
}

func (t *TabSwitcher) setFocus(i int) bool {
	if i == t.focus {
		return false
	}
	t.focus = i
	return true
}

// TabElementID returns the stable accessibility id of the tab with tabID.
func (t *TabSwitcher) TabElementID(tabID string) string {
	return t.id + "-tab-" + tabID
}

// PanelID returns the stable accessibility id of the panel paired with
// tabID. Panels keep their id while inactive so the pairing never breaks.
func (t *TabSwitcher) PanelID(tabID string) string {
	return t.id + "-panel-" + tabID
}

// Accessibility returns the tablist and active tabpanel nodes. Only the
// focused tab is focusable (roving tab index).
func (t *TabSwitcher) Accessibility() Node {
	list := Node{
		ID:    t.id + "-tablist",
		Role:  RoleTabList,
		Label: t.orientation.String(),
	}
	for i, tab := range t.tabs {
		list.Children = append(list.Children, Node{
			ID:        t.TabElementID(tab.ID),
			Role:      RoleTab,
			Label:     tab.accessibleName(),
			Selected:  i == t.active,
			Disabled:  tab.Disabled,
			Focusable: i == t.focus,
			Controls:  t.PanelID(tab.ID),
		})
	}

	root := Node{ID: t.id, Role: RolePresentation, Children: []Node{list}}
	if active, ok := t.ActiveTab(); ok {
		root.Children = append(root.Children, Node{
			ID:         t.PanelID(active.ID),
			Role:       RoleTabPanel,
			Label:      active.accessibleName(),
			Focusable:  true,
			LabelledBy: t.TabElementID(active.ID),
		})
	}
	return root
}

// View renders the switcher with the default theme.
func (t *TabSwitcher) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the strip and the active panel within the
// context's constraints.
func (t *TabSwitcher) ViewWithContext(ctx components.RenderContext) string {
	if len(t.tabs) == 0 {
		return ""
	}
	if t.orientation == OrientationVertical {
		return t.viewVertical(ctx)
	}
	return t.viewHorizontal(ctx)
}

func (t *TabSwitcher) tabStyle(theme components.Theme, i int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, tabPadding)
	switch {
	case t.tabs[i].Disabled:
		style = style.Faint(true)
	case i == t.active:
		style = style.Bold(true).Foreground(theme.Palette.Primary.Base)
	default:
		style = style.Foreground(theme.Palette.Neutral.Base)
	}
	if i == t.focus {
		style = style.Underline(true)
	}
	return style
}

func (t *TabSwitcher) viewHorizontal(ctx components.RenderContext) string {
	avail := -1
	if ctx.Constraints.HasWidth() {
		avail = ctx.Constraints.MaxWidth
	}

	var strip string
	if t.variant == TabVariantFullWidth && avail > 0 {
		widths := equalSplit(avail, len(t.tabs))
		parts := make([]string, len(t.tabs))
		for i, tab := range t.tabs {
			label := ansi.Truncate(tab.displayLabel(), max(widths[i]-2*tabPadding, 0), "…")
			parts[i] = t.tabStyle(ctx.Theme, i).
				Width(widths[i]).
				MaxWidth(widths[i]).
				Align(lipgloss.Center).
				Render(label)
		}
		strip = strings.Join(parts, "")
	} else {
		parts := make([]string, len(t.tabs))
		widths := make([]int, len(t.tabs))
		for i, tab := range t.tabs {
			parts[i] = t.tabStyle(ctx.Theme, i).Render(tab.displayLabel())
			widths[i] = lipgloss.Width(parts[i])
		}

		if t.variant == TabVariantScrollable && avail > 0 && spanOf(widths, 1) > avail {
			start, end := tabWindow(widths, 1, avail-2*scrollMarkerWidth, t.anchor())
			left, right := "  ", "  "
			if start > 0 {
				left = "‹ "
			}
			if end < len(parts) {
				right = " ›"
			}
			strip = left + strings.Join(parts[start:end], " ") + right
		} else {
			strip = strings.Join(parts, " ")
		}
		if avail > 0 {
			strip = ansi.Truncate(strip, avail, "…")
		}
	}

	underline := lipgloss.Width(strip)
	if avail > 0 {
		underline = avail
	}
	rows := []string{strip, components.HorizontalDivider(underline).ViewWithContext(ctx)}

	panelCtx := ctx
	if ctx.Constraints.HasHeight() {
		panelCtx = ctx.WithConstraints(components.Bounded(ctx.Constraints.MaxWidth, max(ctx.Constraints.MaxHeight-len(rows), 0)))
	}
	if panel := t.renderPanel(panelCtx); panel != "" {
		rows = append(rows, panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *TabSwitcher) viewVertical(ctx components.RenderContext) string {
	cellWidth := 0
	for _, tab := range t.tabs {
		cellWidth = max(cellWidth, ansi.StringWidth(tab.displayLabel())+2*tabPadding)
	}

	lines := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		lines[i] = t.tabStyle(ctx.Theme, i).Width(cellWidth).Render(tab.displayLabel())
	}

	if t.variant == TabVariantScrollable && ctx.Constraints.HasHeight() && len(lines) > ctx.Constraints.MaxHeight {
		heights := make([]int, len(lines))
		for i := range heights {
			heights[i] = 1
		}
		start, end := tabWindow(heights, 0, ctx.Constraints.MaxHeight-2, t.anchor())
		up, down := "", ""
		if start > 0 {
			up = "▲"
		}
		if end < len(lines) {
			down = "▼"
		}
		marker := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
		visible := append([]string{marker.Render(up)}, lines[start:end]...)
		lines = append(visible, marker.Render(down))
	}
	strip := lipgloss.JoinVertical(lipgloss.Left, lines...)

	panelCtx := ctx
	if ctx.Constraints.HasWidth() {
		panelCtx = ctx.WithConstraints(components.Bounded(max(ctx.Constraints.MaxWidth-cellWidth-3, 0), ctx.Constraints.MaxHeight))
	}
	panel := t.renderPanel(panelCtx)

	height := max(lipgloss.Height(strip), lipgloss.Height(panel))
	divider := components.VerticalDivider(height).ViewWithContext(ctx)
	if panel == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, strip, " ", divider)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strip, " ", divider, " ", panel)
}

func (t *TabSwitcher) renderPanel(ctx components.RenderContext) string {
	active, ok := t.ActiveTab()
	if !ok {
		return ""
	}
	return components.Render(active.Content, ctx)
}

// anchor is the tab the scrollable strip keeps in view.
func (t *TabSwitcher) anchor() int {
	if t.focus >= 0 {
		return t.focus
	}
	return t.active
}

// tabWindow returns the half-open range [start, end) of items that fit in
// avail cells while keeping anchor visible. Items are separated by gap.
func tabWindow(sizes []int, gap, avail, anchor int) (int, int) {
	n := len(sizes)
	if n == 0 {
		return 0, 0
	}
	anchor = clamp(anchor, 0, n-1)

	fits := func(from, to int) bool {
		return spanOf(sizes[from:to], gap) <= avail
	}

	start := 0
	for start < anchor && !fits(start, anchor+1) {
		start++
	}
	end := anchor + 1
	for end < n && fits(start, end+1) {
		end++
	}
	return start, end
}

func spanOf(sizes []int, gap int) int {
	total := 0
	for i, size := range sizes {
		if i > 0 {
			total += gap
		}
		total += size
	}
	return total
}

// equalSplit divides total into n parts whose sizes differ by at most one.
func equalSplit(total, n int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	base, rem := total/n, total%n
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
