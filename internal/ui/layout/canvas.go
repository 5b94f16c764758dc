package layout

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

// SizeClass names the diameter of a floating element.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

var sizeDiameters = map[SizeClass]int{
	SizeSmall:  40,
	SizeMedium: 64,
	SizeLarge:  96,
}

// Valid reports whether s is a known size class.
func (s SizeClass) Valid() bool {
	_, ok := sizeDiameters[s]
	return ok
}

// Diameter returns the pixel diameter, treating unknown classes as medium.
func (s SizeClass) Diameter() int {
	if d, ok := sizeDiameters[s]; ok {
		return d
	}
	return sizeDiameters[SizeMedium]
}

var sizeGlyphs = map[SizeClass]string{
	SizeSmall:  "·",
	SizeMedium: "•",
	SizeLarge:  "●",
}

// ElementStyle is passed through to the renderer without interpretation
// beyond what a terminal can show.
type ElementStyle struct {
	Background string
	Color      string
	Radius     int
	// Opacity in [0, 1]; zero means unset.
	Opacity float64
}

// FloatingElement describes one decorative item. X and Y are percentages of
// the canvas and are never clamped.
type FloatingElement struct {
	ID        string
	Content   ui.Renderable
	X, Y      float64
	Size      SizeClass
	Style     ElementStyle
	Rotation  float64
	Animation AnimationKind
	Duration  time.Duration
	ZIndex    int
}

// MainContent is the centered block painted above every element.
type MainContent struct {
	Title    string
	Body     ui.Renderable
	CTALabel string
	// Width in cells; zero sizes the card to its content.
	Width int
}

// Placement is the resolved position and stacking of one element.
type Placement struct {
	ID string
	// Index is the element's position in the input list.
	Index int
	// Layer is the paint order; layer 0 is painted first.
	Layer            int
	ZIndex           int
	CenterX, CenterY float64
	Left, Top        float64
	Diameter         int
	Binding          AnimationBinding
}

// CanvasOption configures a ScatteredCanvas.
type CanvasOption func(*ScatteredCanvas)

// WithCanvasWidth fixes the canvas width in pixels. Without it the canvas
// follows the viewport.
func WithCanvasWidth(px int) CanvasOption {
	return func(c *ScatteredCanvas) { c.width = px }
}

// WithBackground sets the background colour.
func WithBackground(bg string) CanvasOption {
	return func(c *ScatteredCanvas) { c.background = bg }
}

// WithAnimated toggles every element animation at once.
func WithAnimated(animated bool) CanvasOption {
	return func(c *ScatteredCanvas) { c.animated = animated }
}

// WithElements sets the floating elements.
func WithElements(elements ...FloatingElement) CanvasOption {
	return func(c *ScatteredCanvas) {
		c.elements = append([]FloatingElement(nil), elements...)
	}
}

// WithMainContent sets the centered block.
func WithMainContent(main MainContent) CanvasOption {
	return func(c *ScatteredCanvas) { c.main = &main }
}

// OnCtaClick registers the call-to-action callback.
func OnCtaClick(fn func()) CanvasOption {
	return func(c *ScatteredCanvas) { c.onCTA = fn }
}

// OnElementClick registers the element activation callback.
func OnElementClick(fn func(id string)) CanvasOption {
	return func(c *ScatteredCanvas) { c.onElement = fn }
}

// ScatteredCanvas places floating elements by percentage around an optional
// centered block.
type ScatteredCanvas struct {
	id         string
	height     int
	width      int
	viewport   int
	background string
	animated   bool
	elements   []FloatingElement
	main       *MainContent
	onCTA      func()
	onElement  func(string)
}

// NewScatteredCanvas creates a canvas height pixels tall. Animation is on
// unless disabled with WithAnimated(false).
func NewScatteredCanvas(height int, opts ...CanvasOption) *ScatteredCanvas {
	c := &ScatteredCanvas{
		id:       newInstanceID("canvas"),
		height:   height,
		viewport: -1,
		animated: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the instance identifier.
func (c *ScatteredCanvas) ID() string {
	return c.id
}

// Elements returns a copy of the element list.
func (c *ScatteredCanvas) Elements() []FloatingElement {
	return append([]FloatingElement(nil), c.elements...)
}

// MainContent returns the centered block, if any.
func (c *ScatteredCanvas) MainContent() (MainContent, bool) {
	if c.main == nil {
		return MainContent{}, false
	}
	return *c.main, true
}

// Animated reports the global animation switch.
func (c *ScatteredCanvas) Animated() bool {
	return c.animated
}

// SetAnimated flips the global animation switch.
func (c *ScatteredCanvas) SetAnimated(animated bool) {
	c.animated = animated
}

// SetViewportWidth records the viewport width used when no fixed width is
// set.
func (c *ScatteredCanvas) SetViewportWidth(px int) {
	c.viewport = px
}

// Width returns the canvas width in pixels, or -1 while it is unknown.
func (c *ScatteredCanvas) Width() int {
	if c.width > 0 {
		return c.width
	}
	return c.viewport
}

// Height returns the canvas height in pixels.
func (c *ScatteredCanvas) Height() int {
	return c.height
}

// Resolve computes placements at the current width.
func (c *ScatteredCanvas) Resolve() []Placement {
	return c.ResolveAt(max(c.Width(), 0))
}

// ResolveAt computes placements for a canvas width pixels wide. The result
// is in paint order: ascending z-index, ties kept in input order.
func (c *ScatteredCanvas) ResolveAt(width int) []Placement {
	placements := make([]Placement, len(c.elements))
	for i, el := range c.elements {
		d := el.Size.Diameter()
		cx := el.X / 100 * float64(width)
		cy := el.Y / 100 * float64(c.height)
		placements[i] = Placement{
			ID:       el.ID,
			Index:    i,
			ZIndex:   el.ZIndex,
			CenterX:  cx,
			CenterY:  cy,
			Left:     cx - float64(d)/2,
			Top:      cy - float64(d)/2,
			Diameter: d,
			Binding:  bindAnimation(el, c.animated),
		}
	}
	sort.SliceStable(placements, func(a, b int) bool {
		return placements[a].ZIndex < placements[b].ZIndex
	})
	for layer := range placements {
		placements[layer].Layer = layer
	}
	return placements
}

// Bindings returns each element's animation binding keyed by id.
func (c *ScatteredCanvas) Bindings() map[string]AnimationBinding {
	out := make(map[string]AnimationBinding, len(c.elements))
	for _, el := range c.elements {
		if _, seen := out[el.ID]; !seen {
			out[el.ID] = bindAnimation(el, c.animated)
		}
	}
	return out
}

// HasActiveAnimation reports whether any element needs frames.
func (c *ScatteredCanvas) HasActiveAnimation() bool {
	for _, el := range c.elements {
		if bindAnimation(el, c.animated).Active {
			return true
		}
	}
	return false
}

// MainContentLayer is the paint layer of the centered block, one above the
// last element.
func (c *ScatteredCanvas) MainContentLayer() int {
	return len(c.elements)
}

// MainZIndex is the effective z-index of the centered block, one above the
// highest element's. It saturates at math.MaxInt, where it ties with that
// element; MainContentLayer still paints the block last.
func (c *ScatteredCanvas) MainZIndex() int {
	top := 0
	for i, el := range c.elements {
		if i == 0 || el.ZIndex > top {
			top = el.ZIndex
		}
	}
	if top == math.MaxInt {
		return top
	}
	return top + 1
}

// ClickCTA activates the call to action. It reports whether a callback ran.
func (c *ScatteredCanvas) ClickCTA() bool {
	if c.main == nil || c.main.CTALabel == "" || c.onCTA == nil {
		return false
	}
	c.onCTA()
	return true
}

// ClickElement activates the element with the given id. Elements without
// content are still clickable. With duplicate ids the first listed wins.
func (c *ScatteredCanvas) ClickElement(id string) bool {
	for _, el := range c.elements {
		if el.ID != id || id == "" {
			continue
		}
		if c.onElement == nil {
			return false
		}
		c.onElement(id)
		return true
	}
	return false
}

// HitTest returns the topmost element whose circle contains the pixel point.
func (c *ScatteredCanvas) HitTest(x, y float64) (string, bool) {
	placements := c.Resolve()
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		if p.ID == "" {
			continue
		}
		if math.Hypot(x-p.CenterX, y-p.CenterY) <= float64(p.Diameter)/2 {
			return p.ID, true
		}
	}
	return "", false
}

// HitKind classifies what a cell hit landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitElement
	HitMain
	HitCTA
)

// Hit is the result of a cell hit test.
type Hit struct {
	Kind HitKind
	ID   string
}

// HitTestCell resolves a terminal cell to the layer drawn there.
func (c *ScatteredCanvas) HitTestCell(ctx components.RenderContext, col, row int) Hit {
	return c.hitTestAt(ctx, col, row, 0)
}

func (c *ScatteredCanvas) hitTestAt(ctx components.RenderContext, col, row int, elapsed time.Duration) Hit {
	g := c.geometry(ctx)
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return Hit{}
	}

	if c.main != nil {
		card := c.mainCard(ctx, g)
		if card.contains(col, row) {
			if card.cta.contains(col, row) {
				return Hit{Kind: HitCTA}
			}
			return Hit{Kind: HitMain}
		}
	}

	placements := c.ResolveAt(g.width)
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		if p.ID == "" {
			continue
		}
		if c.elementRect(g, p, elapsed).contains(col, row) {
			return Hit{Kind: HitElement, ID: p.ID}
		}
	}
	return Hit{}
}

// Activate dispatches a hit to the matching callback.
func (c *ScatteredCanvas) Activate(hit Hit) bool {
	switch hit.Kind {
	case HitCTA:
		return c.ClickCTA()
	case HitElement:
		return c.ClickElement(hit.ID)
	default:
		return false
	}
}

// Accessibility lists clickable elements in paint order, then the centered
// block and its call to action, which come last so they are reached last.
func (c *ScatteredCanvas) Accessibility() Node {
	root := Node{ID: c.id, Role: RolePresentation}
	for _, p := range c.Resolve() {
		if p.ID == "" {
			continue
		}
		root.Children = append(root.Children, Node{
			ID:        c.id + "-el-" + p.ID,
			Role:      RoleButton,
			Label:     p.ID,
			Focusable: true,
		})
	}
	if c.main != nil {
		region := Node{ID: c.id + "-main", Role: RoleRegion, Label: c.main.Title}
		if c.main.CTALabel != "" {
			region.Children = []Node{{
				ID:        c.id + "-cta",
				Role:      RoleButton,
				Label:     c.main.CTALabel,
				Focusable: true,
			}}
		}
		root.Children = append(root.Children, region)
	}
	return root
}

// View renders the canvas statically with the default theme.
func (c *ScatteredCanvas) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the first animation frame.
func (c *ScatteredCanvas) ViewWithContext(ctx components.RenderContext) string {
	return c.ViewFrame(ctx, 0)
}

// ViewFrame renders the canvas as it looks elapsed into its animations.
// Elements are painted in stacking order and the centered block last.
func (c *ScatteredCanvas) ViewFrame(ctx components.RenderContext, elapsed time.Duration) string {
	g := c.geometry(ctx)
	if g.cols <= 0 || g.rows <= 0 {
		return ""
	}

	bg := lipgloss.NewStyle()
	if c.background != "" {
		bg = bg.Background(lipgloss.Color(c.background))
	}
	blank := bg.Render(strings.Repeat(" ", g.cols))
	lines := make([]string, g.rows)
	for i := range lines {
		lines[i] = blank
	}

	for _, p := range c.ResolveAt(g.width) {
		el := c.elements[p.Index]
		rect := c.elementRect(g, p, elapsed)
		block := c.renderElement(ctx, el, p.Binding.FrameAt(elapsed, el.Rotation), rect)
		splice(lines, block, rect.x, rect.y, g.cols)
	}

	if c.main != nil {
		card := c.mainCard(ctx, g)
		splice(lines, card.view, card.x, card.y, g.cols)
	}
	return strings.Join(lines, "\n")
}

// canvasGeometry is the canvas measured in both pixels and cells.
type canvasGeometry struct {
	cell       components.CellMetric
	width      int
	cols, rows int
}

func (c *ScatteredCanvas) geometry(ctx components.RenderContext) canvasGeometry {
	cell := ctx.Theme.Cell
	if cell.IsZero() {
		cell = components.DefaultCellMetric()
	}

	width := c.Width()
	if width < 0 {
		if ctx.Constraints.HasWidth() {
			width = cell.PixelWidth(ctx.Constraints.MaxWidth)
		} else {
			width = 0
		}
	}
	cols := cell.Columns(width)
	if ctx.Constraints.HasWidth() {
		cols = min(cols, ctx.Constraints.MaxWidth)
	}
	rows := cell.Rows(c.height)
	if ctx.Constraints.HasHeight() {
		rows = min(rows, ctx.Constraints.MaxHeight)
	}
	return canvasGeometry{cell: cell, width: width, cols: cols, rows: rows}
}

type cellRect struct {
	x, y, w, h int
}

func (r cellRect) contains(col, row int) bool {
	return col >= r.x && col < r.x+r.w && row >= r.y && row < r.y+r.h
}

func (c *ScatteredCanvas) elementRect(g canvasGeometry, p Placement, elapsed time.Duration) cellRect {
	w := max(1, g.cell.Columns(p.Diameter))
	h := max(1, g.cell.Rows(p.Diameter))
	frame := p.Binding.FrameAt(elapsed, 0)
	col := g.cell.Column(p.CenterX)
	row := g.cell.Row(p.CenterY) + frame.OffsetY
	return cellRect{x: col - w/2, y: row - h/2, w: w, h: h}
}

func (c *ScatteredCanvas) renderElement(ctx components.RenderContext, el FloatingElement, frame Frame, rect cellRect) string {
	style := lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center)
	if el.Style.Background != "" {
		style = style.Background(lipgloss.Color(el.Style.Background))
	}
	if el.Style.Color != "" {
		style = style.Foreground(lipgloss.Color(el.Style.Color))
	} else {
		style = style.Foreground(ctx.Theme.Palette.Secondary.Base)
	}
	if el.Style.Opacity > 0 && el.Style.Opacity < 0.5 {
		style = style.Faint(true)
	}
	if frame.Dim {
		style = style.Faint(true)
	}

	innerW, innerH := rect.w, rect.h
	if el.Style.Radius > 0 && rect.w >= 3 && rect.h >= 3 {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(ctx.Theme.Palette.Neutral.Muted)
		innerW, innerH = rect.w-2, rect.h-2
	}
	style = style.Width(innerW).Height(innerH).MaxWidth(rect.w).MaxHeight(rect.h)

	var content string
	if el.Content != nil {
		content = components.Render(el.Content, ctx.WithConstraints(components.Bounded(innerW, innerH)))
	}
	if content == "" {
		content = sizeGlyphs[el.Size]
		if content == "" {
			content = sizeGlyphs[SizeMedium]
		}
		if el.Animation == AnimationRotate || el.Rotation != 0 {
			content = rotationGlyph(frame.Angle)
		}
	}
	return style.Render(content)
}

type mainCard struct {
	cellRect
	view string
	cta  cellRect
}

// mainCard renders the centered block and measures where it and its call
// to action land.
func (c *ScatteredCanvas) mainCard(ctx components.RenderContext, g canvasGeometry) mainCard {
	card := components.NewCard().WithTitle(c.main.Title)
	if c.main.Body != nil {
		card.Add(c.main.Body)
	}
	var button *components.Button
	if c.main.CTALabel != "" {
		button = components.PrimaryButton(c.main.CTALabel, func() { c.ClickCTA() })
		card.Add(button)
	}
	width := c.main.Width
	if width <= 0 || width > g.cols {
		width = 0
	}
	if width > 0 {
		card.WithWidth(width)
	}

	bounded := ctx.WithConstraints(components.Bounded(g.cols, g.rows))
	view := card.ViewWithContext(bounded)
	w, h := lipgloss.Size(view)
	out := mainCard{
		cellRect: cellRect{x: (g.cols - w) / 2, y: (g.rows - h) / 2, w: w, h: h},
		view:     view,
	}
	if button != nil {
		// The button is the last content row, inside the border and padding.
		bw := lipgloss.Width(button.ViewWithContext(bounded))
		out.cta = cellRect{x: out.x + 2, y: out.y + h - 2, w: bw, h: 1}
	}
	return out
}
