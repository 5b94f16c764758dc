package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

const pageYAML = `version: "1.0"
name: "Landing"
theme:
  spacing_unit: 4
  breakpoints:
    tablet: 700
tabs:
  orientation: vertical
  variant: scrollable
  default_index: 1
  items:
    - id: overview
      label: Overview
      content: "Overview body"
    - id: usage
      label: Usage
      content: "Usage body"
sidebar:
  width: wide
  collapsible: true
  collapsed: true
  collapsed_width: 48
  hide_on_mobile: true
  breakpoint: tablet
  gap: 3
  side: right
  role: navigation
  content: "Links"
canvas:
  height: 320
  width: 640
  animated: false
  elements:
    - id: spark
      content: "*"
      x: 10
      y: 20
      size: small
      animation: pulse
      duration: 1500ms
      z: 4
    - id: moon
      x: 80
      y: 70
      rotation: 45
      animation: rotate
  main:
    title: "Welcome"
    body: "Scattered things"
    cta: "Start"
`

func decodePage(t *testing.T) *Document {
	t.Helper()

	doc, err := DecodeDocument("page.yaml", []byte(pageYAML))
	require.NoError(t, err)
	require.Empty(t, doc.Lint())
	return doc
}

func TestBuildTheme(t *testing.T) {
	t.Parallel()

	theme := decodePage(t).BuildTheme()
	require.Equal(t, 4, theme.SpacingUnit)
	require.Equal(t, 700, theme.Breakpoints["tablet"])
	require.Equal(t, 900, theme.Breakpoints[components.BreakpointMD], "defaults survive overrides")
	require.Equal(t, components.DefaultCellMetric(), theme.Cell)

	var nilDoc *Document
	require.Equal(t, components.DefaultTheme().SpacingUnit, nilDoc.BuildTheme().SpacingUnit)

	base := components.DefaultTheme().WithSpacingUnit(2).WithCell(components.CellMetric{Width: 10, Height: 20})
	layered := (&Document{Theme: ThemeSpec{SpacingUnit: 6}}).BuildThemeOn(base)
	require.Equal(t, 6, layered.SpacingUnit)
	require.Equal(t, 10, layered.Cell.Width, "base values survive")
}

func TestBuildTabs(t *testing.T) {
	t.Parallel()

	var changed []int
	tabs := decodePage(t).BuildTabs(layout.OnTabChange(func(i int) { changed = append(changed, i) }))
	require.NotNil(t, tabs)
	require.Equal(t, 2, tabs.Len())
	require.Equal(t, 1, tabs.ActiveIndex())
	require.Equal(t, layout.OrientationVertical, tabs.Orientation())

	require.True(t, tabs.Select(0))
	require.Equal(t, []int{0}, changed)

	require.Nil(t, (&Document{}).BuildTabs())
}

func TestBuildSidebar(t *testing.T) {
	t.Parallel()

	doc := decodePage(t)
	s := doc.BuildSidebar(doc.BuildTheme(), nil)
	require.NotNil(t, s)
	require.True(t, s.Collapsible())
	require.True(t, s.Collapsed())
	require.Equal(t, 48, s.EffectiveWidth())
	require.Equal(t, 12, s.GapPixels())
	require.Equal(t, 700, s.BreakpointPixels())

	regions := s.Regions()
	require.Equal(t, layout.RoleMain, regions[0].Role)
	require.Equal(t, layout.RoleNavigation, regions[1].Role)

	require.False(t, s.SetViewportWidth(700))
	require.True(t, s.SetViewportWidth(701))
}

func TestBuildCanvas(t *testing.T) {
	t.Parallel()

	var clicked []string
	canvas, err := decodePage(t).BuildCanvas(layout.OnElementClick(func(id string) { clicked = append(clicked, id) }))
	require.NoError(t, err)
	require.NotNil(t, canvas)

	require.Equal(t, 640, canvas.Width())
	require.Equal(t, 320, canvas.Height())
	require.False(t, canvas.Animated())

	elements := canvas.Elements()
	require.Len(t, elements, 2)
	require.Equal(t, 1500*time.Millisecond, elements[0].Duration)
	require.Equal(t, layout.SizeSmall, elements[0].Size)
	require.Equal(t, layout.AnimationRotate, elements[1].Animation)

	bindings := canvas.Bindings()
	require.False(t, bindings["spark"].Active)
	require.Equal(t, layout.DefaultAnimationDuration, bindings["moon"].Duration)

	main, ok := canvas.MainContent()
	require.True(t, ok)
	require.Equal(t, "Start", main.CTALabel)

	require.True(t, canvas.ClickElement("spark"))
	require.Equal(t, []string{"spark"}, clicked)
}

func TestBuildCanvasRejectsBadDuration(t *testing.T) {
	t.Parallel()

	doc := &Document{Canvas: &CanvasSpec{Height: 10, Elements: []ElementSpec{{Duration: "later"}}}}
	_, err := doc.BuildCanvas()
	require.Error(t, err)
	require.Contains(t, err.Error(), "canvas.elements[0].duration")
}

func TestBuildPageNestsTabsInSidebar(t *testing.T) {
	t.Parallel()

	page, err := decodePage(t).BuildPage(components.DefaultTheme())
	require.NoError(t, err)
	require.Len(t, page.Sections(), 2)

	page.SetViewportWidth(1200)
	ctx := components.NewContext(page.Theme).WithConstraints(components.Bounded(150, 80))
	out := ansi.Strip(page.View(ctx))
	require.Contains(t, out, "Links")
	require.Contains(t, out, "Usage body", "active tab renders in the main region")
	require.NotContains(t, out, "Overview body")
	require.Contains(t, out, "Welcome")
}

func TestBuildPageKeepsTabsBesideSidebarWithMain(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Tabs = &TabsSpec{Items: []TabSpec{{ID: "a", Label: "Alpha", Content: "alpha body"}}}
	doc.Sidebar = &SidebarSpec{Content: "Links", Main: "Main text"}

	page, err := doc.BuildPage(components.DefaultTheme())
	require.NoError(t, err)
	sections := page.Sections()
	require.Len(t, sections, 2)
	require.Same(t, page.Sidebar, sections[0])
	require.Same(t, page.Tabs, sections[1])

	page.SetViewportWidth(1200)
	ctx := components.NewContext(page.Theme).WithConstraints(components.Bounded(150, 40))
	out := ansi.Strip(page.View(ctx))
	require.Contains(t, out, "Links")
	require.Contains(t, out, "Main text")
	require.Contains(t, out, "alpha body")
}

func TestBuildPageTabsOnly(t *testing.T) {
	t.Parallel()

	page, err := validDocument().BuildPage(components.DefaultTheme())
	require.NoError(t, err)
	require.Nil(t, page.Sidebar)
	require.Nil(t, page.Canvas)
	sections := page.Sections()
	require.Len(t, sections, 1)
	require.Same(t, page.Tabs, sections[0])
}
