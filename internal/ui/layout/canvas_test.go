package layout

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
)

func TestCanvasEqualCoordinatesStackByZIndex(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(400,
		WithCanvasWidth(1000),
		WithElements(
			FloatingElement{ID: "first", X: 10, Y: 20, ZIndex: 1},
			FloatingElement{ID: "second", X: 10, Y: 20, ZIndex: 0},
		),
	)

	placements := c.Resolve()
	require.Len(t, placements, 2)
	require.Equal(t, "second", placements[0].ID)
	require.Equal(t, "first", placements[1].ID)
	require.Greater(t, placements[1].Layer, placements[0].Layer)

	id, ok := c.HitTest(100, 80)
	require.True(t, ok)
	require.Equal(t, "first", id)
}

func TestCanvasEqualZIndexKeepsInputOrder(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(400, WithCanvasWidth(1000), WithElements(
		FloatingElement{ID: "a", ZIndex: 2},
		FloatingElement{ID: "b", ZIndex: 1},
		FloatingElement{ID: "c", ZIndex: 2},
		FloatingElement{ID: "d", ZIndex: 1},
	))

	var order []string
	for _, p := range c.Resolve() {
		order = append(order, p.ID)
	}
	require.Equal(t, []string{"b", "d", "a", "c"}, order)
}

func TestCanvasPlacementIsCenterAnchored(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(400, WithCanvasWidth(1000), WithElements(
		FloatingElement{ID: "m", X: 50, Y: 25, Size: SizeMedium},
		FloatingElement{ID: "off", X: 150, Y: -10, Size: SizeLarge},
	))

	placements := c.Resolve()
	m := placements[0]
	assert.InDelta(t, 500, m.CenterX, 1e-9)
	assert.InDelta(t, 100, m.CenterY, 1e-9)
	assert.InDelta(t, 468, m.Left, 1e-9)
	assert.InDelta(t, 68, m.Top, 1e-9)
	assert.Equal(t, 64, m.Diameter)

	off := placements[1]
	assert.InDelta(t, 1500, off.CenterX, 1e-9, "coordinates are not clamped")
	assert.InDelta(t, -40, off.CenterY, 1e-9)
	assert.Equal(t, 96, off.Diameter)
}

func TestCanvasPlacementFollowsViewport(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(200, WithElements(FloatingElement{ID: "e", X: 25, Y: 50}))
	require.Equal(t, -1, c.Width())

	c.SetViewportWidth(800)
	require.InDelta(t, 200, c.Resolve()[0].CenterX, 1e-9)

	c.SetViewportWidth(400)
	require.InDelta(t, 100, c.Resolve()[0].CenterX, 1e-9)
}

func TestSizeClassDiameters(t *testing.T) {
	t.Parallel()

	require.Equal(t, 40, SizeSmall.Diameter())
	require.Equal(t, 64, SizeMedium.Diameter())
	require.Equal(t, 96, SizeLarge.Diameter())
	require.Equal(t, 64, SizeClass("").Diameter())
	require.False(t, SizeClass("huge").Valid())
}

func TestCanvasMainContentAboveEveryElement(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(400, WithCanvasWidth(1000),
		WithMainContent(MainContent{Title: "Promo"}),
		WithElements(
			FloatingElement{ID: "high", ZIndex: 1000},
			FloatingElement{ID: "low", ZIndex: -5},
		),
	)

	require.Equal(t, 1001, c.MainZIndex())
	for _, p := range c.Resolve() {
		require.Greater(t, c.MainContentLayer(), p.Layer)
		require.Greater(t, c.MainZIndex(), p.ZIndex)
	}

	negative := NewScatteredCanvas(100, WithElements(FloatingElement{ID: "n", ZIndex: -10}))
	require.Equal(t, -9, negative.MainZIndex())
}

func TestCanvasMainZIndexSaturates(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(100,
		WithMainContent(MainContent{Title: "Promo"}),
		WithElements(
			FloatingElement{ID: "max", ZIndex: math.MaxInt},
			FloatingElement{ID: "min", ZIndex: math.MinInt},
		),
	)

	require.Equal(t, math.MaxInt, c.MainZIndex())
	for _, p := range c.Resolve() {
		require.GreaterOrEqual(t, c.MainZIndex(), p.ZIndex)
		require.Greater(t, c.MainContentLayer(), p.Layer)
	}
}

func TestCanvasAnimatedFalseDisablesEveryBinding(t *testing.T) {
	t.Parallel()

	elements := []FloatingElement{
		{ID: "f", Animation: AnimationFloat},
		{ID: "p", Animation: AnimationPulse, Duration: time.Second},
		{ID: "r", Animation: AnimationRotate},
		{ID: "n", Animation: AnimationNone},
	}

	c := NewScatteredCanvas(200, WithAnimated(false), WithElements(elements...))
	for id, binding := range c.Bindings() {
		require.False(t, binding.Active, id)
	}
	for _, p := range c.Resolve() {
		require.False(t, p.Binding.Active)
	}
	require.False(t, c.HasActiveAnimation())

	c.SetAnimated(true)
	bindings := c.Bindings()
	require.True(t, bindings["f"].Active)
	require.True(t, bindings["p"].Active)
	require.True(t, bindings["r"].Active)
	require.False(t, bindings["n"].Active)
	require.Equal(t, DefaultAnimationDuration, bindings["f"].Duration)
	require.Equal(t, time.Second, bindings["p"].Duration)
}

func TestCanvasAnimatedByDefault(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(200, WithElements(FloatingElement{ID: "f", Animation: AnimationFloat}))
	require.True(t, c.Animated())
	require.True(t, c.HasActiveAnimation())
}

func TestCanvasClicks(t *testing.T) {
	t.Parallel()

	var clicked []string
	ctaCalls := 0
	c := NewScatteredCanvas(200,
		WithElements(
			FloatingElement{ID: "glow"},
			FloatingElement{ID: "dup", Content: ui.Text("one")},
			FloatingElement{ID: "dup", Content: ui.Text("two")},
		),
		WithMainContent(MainContent{Title: "Sale", CTALabel: "Shop"}),
		OnCtaClick(func() { ctaCalls++ }),
		OnElementClick(func(id string) { clicked = append(clicked, id) }),
	)

	require.True(t, c.ClickElement("glow"), "empty content is still clickable")
	require.True(t, c.ClickElement("dup"))
	require.False(t, c.ClickElement("missing"))
	require.False(t, c.ClickElement(""))
	require.Equal(t, []string{"glow", "dup"}, clicked)

	require.True(t, c.ClickCTA())
	require.Equal(t, 1, ctaCalls)
}

func TestCanvasCTARequiresLabelAndCallback(t *testing.T) {
	t.Parallel()

	called := false
	noLabel := NewScatteredCanvas(100, WithMainContent(MainContent{Title: "x"}), OnCtaClick(func() { called = true }))
	require.False(t, noLabel.ClickCTA())

	noMain := NewScatteredCanvas(100, OnCtaClick(func() { called = true }))
	require.False(t, noMain.ClickCTA())
	require.False(t, called)

	noCallback := NewScatteredCanvas(100, WithMainContent(MainContent{CTALabel: "Go"}))
	require.False(t, noCallback.ClickCTA())
}

func canvasForCells() (*ScatteredCanvas, components.RenderContext) {
	c := NewScatteredCanvas(320,
		WithCanvasWidth(640),
		WithElements(FloatingElement{ID: "dot", X: 5, Y: 10, Size: SizeSmall}),
		WithMainContent(MainContent{Title: "Promo", CTALabel: "Go"}),
	)
	return c, components.DefaultContext()
}

func TestCanvasHitTestCell(t *testing.T) {
	t.Parallel()

	c, ctx := canvasForCells()
	g := c.geometry(ctx)
	require.Equal(t, 80, g.cols)
	require.Equal(t, 20, g.rows)

	card := c.mainCard(ctx, g)
	require.Equal(t, Hit{Kind: HitCTA}, c.HitTestCell(ctx, card.cta.x, card.cta.y))
	require.Equal(t, Hit{Kind: HitMain}, c.HitTestCell(ctx, card.x, card.y))

	// 32px maps to column 4 and row 2; a small element spans 5x3 cells.
	require.Equal(t, Hit{Kind: HitElement, ID: "dot"}, c.HitTestCell(ctx, 4, 2))
	require.Equal(t, Hit{Kind: HitElement, ID: "dot"}, c.HitTestCell(ctx, 2, 1))
	require.Equal(t, Hit{}, c.HitTestCell(ctx, 70, 18))
	require.Equal(t, Hit{}, c.HitTestCell(ctx, -1, 0))
	require.Equal(t, Hit{}, c.HitTestCell(ctx, 80, 0))
}

func TestCanvasMainCardCoversElements(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(320,
		WithCanvasWidth(640),
		WithElements(FloatingElement{ID: "under", X: 50, Y: 50, Size: SizeLarge, ZIndex: 99}),
		WithMainContent(MainContent{Title: "Promo"}),
	)
	ctx := components.DefaultContext()
	g := c.geometry(ctx)
	card := c.mainCard(ctx, g)

	hit := c.HitTestCell(ctx, card.x+card.w/2, card.y+card.h/2)
	require.Equal(t, HitMain, hit.Kind)
}

func TestCanvasViewFrameDimensions(t *testing.T) {
	t.Parallel()

	c, ctx := canvasForCells()
	out := c.ViewFrame(ctx, 0)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 20)
	for i, line := range lines {
		require.Equal(t, 80, ansi.StringWidth(line), "line %d", i)
	}
	plain := ansi.Strip(out)
	require.Contains(t, plain, "Promo")
	require.Contains(t, plain, "Go")
	require.Contains(t, plain, sizeGlyphs[SizeSmall])
}

func TestCanvasViewRespectsConstraints(t *testing.T) {
	t.Parallel()

	c, ctx := canvasForCells()
	out := c.ViewWithContext(ctx.WithConstraints(components.Bounded(30, 6)))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)
	for _, line := range lines {
		require.Equal(t, 30, ansi.StringWidth(line))
	}
	require.Empty(t, c.ViewWithContext(ctx.WithConstraints(components.Bounded(0, 6))))
}

func TestCanvasEmptyRendersBackgroundOnly(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(64, WithCanvasWidth(80), WithBackground("#101820"))
	out := ansi.Strip(c.View())
	require.Empty(t, strings.TrimSpace(out))
	require.Len(t, strings.Split(out, "\n"), 4)
	require.Empty(t, c.Resolve())
}

func TestCanvasOffCanvasElementsAreClipped(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(160, WithCanvasWidth(160), WithElements(
		FloatingElement{ID: "left", X: -2, Y: 50, Content: ui.Text("LLLL")},
		FloatingElement{ID: "gone", X: 400, Y: 50, Content: ui.Text("GONE")},
	))
	lines := strings.Split(c.View(), "\n")
	for _, line := range lines {
		require.Equal(t, 20, ansi.StringWidth(line))
	}
	require.NotContains(t, ansi.Strip(strings.Join(lines, "\n")), "GONE")
}

func TestCanvasModelMouseDispatch(t *testing.T) {
	t.Parallel()

	ctaCalls := 0
	var clicked []string
	c := NewScatteredCanvas(320,
		WithElements(FloatingElement{ID: "dot", X: 5, Y: 10, Size: SizeSmall}),
		WithMainContent(MainContent{Title: "Promo", CTALabel: "Go"}),
		WithAnimated(false),
		OnCtaClick(func() { ctaCalls++ }),
		OnElementClick(func(id string) { clicked = append(clicked, id) }),
	)
	m := NewCanvasModel(c, components.DefaultContext(), nil)
	require.Nil(t, m.Init())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = updated.(CanvasModel)
	require.Equal(t, 640, c.Width())

	ctx := m.renderContext()
	card := c.mainCard(ctx, c.geometry(ctx))

	_, cmd := m.Update(tea.MouseMsg{X: card.cta.x, Y: card.cta.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.Equal(t, CanvasClickMsg{CanvasID: c.ID(), Hit: Hit{Kind: HitCTA}}, cmd())
	require.Equal(t, 1, ctaCalls)

	_, cmd = m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.Equal(t, []string{"dot"}, clicked)

	_, cmd = m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 2, ctaCalls)
}

func TestCanvasModelFramesOnlyWhileAnimating(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(160, WithCanvasWidth(320), WithElements(
		FloatingElement{ID: "f", X: 50, Y: 50, Animation: AnimationFloat, Duration: 2 * time.Second},
	))
	m := NewCanvasModel(c, components.DefaultContext(), nil)
	require.NotNil(t, m.Init())

	start := time.Unix(1700000000, 0)
	updated, cmd := m.Update(canvasFrameMsg{canvasID: c.ID(), at: start})
	require.NotNil(t, cmd)
	m = updated.(CanvasModel)
	require.Zero(t, m.Elapsed())

	updated, cmd = m.Update(canvasFrameMsg{canvasID: c.ID(), at: start.Add(500 * time.Millisecond)})
	require.NotNil(t, cmd)
	m = updated.(CanvasModel)
	require.Equal(t, 500*time.Millisecond, m.Elapsed())

	_, cmd = m.Update(canvasFrameMsg{canvasID: "other", at: start})
	require.Nil(t, cmd)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Nil(t, cmd)
	m = updated.(CanvasModel)
	require.False(t, c.Animated())
	require.Zero(t, m.Elapsed())

	_, cmd = m.Update(canvasFrameMsg{canvasID: c.ID(), at: start.Add(time.Second)})
	require.Nil(t, cmd, "ticking stops once nothing animates")
}

func TestCanvasModelRestartsTicking(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(160, WithAnimated(false), WithElements(
		FloatingElement{ID: "p", Animation: AnimationPulse},
	))
	m := NewCanvasModel(c, components.DefaultContext(), nil)
	require.Nil(t, m.Init())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)
	require.True(t, c.HasActiveAnimation())
}

func TestCanvasAccessibility(t *testing.T) {
	t.Parallel()

	c := NewScatteredCanvas(200,
		WithElements(
			FloatingElement{ID: "top", ZIndex: 5},
			FloatingElement{},
			FloatingElement{ID: "bottom"},
		),
		WithMainContent(MainContent{Title: "Promo", CTALabel: "Buy"}),
	)
	tree := c.Accessibility()

	buttons := tree.FindRole(RoleButton)
	require.Len(t, buttons, 3)
	require.Equal(t, "bottom", buttons[0].Label)
	require.Equal(t, "top", buttons[1].Label)
	require.Equal(t, "Buy", buttons[2].Label)

	regions := tree.FindRole(RoleRegion)
	require.Len(t, regions, 1)
	require.Equal(t, "Promo", regions[0].Label)
}
