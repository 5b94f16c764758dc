package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Breakpoint names a viewport-width threshold.
type Breakpoint string

const (
	BreakpointXS Breakpoint = "xs"
	BreakpointSM Breakpoint = "sm"
	BreakpointMD Breakpoint = "md"
	BreakpointLG Breakpoint = "lg"
	BreakpointXL Breakpoint = "xl"
)

// DefaultBreakpoint is used when a token is missing from the table.
const DefaultBreakpoint = BreakpointMD

// DefaultSpacingUnit is the pixel size of one gap unit.
const DefaultSpacingUnit = 8

// Breakpoints maps breakpoint tokens to pixel viewport thresholds.
type Breakpoints map[Breakpoint]int

// DefaultBreakpoints returns the standard threshold table.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		BreakpointXS: 0,
		BreakpointSM: 600,
		BreakpointMD: 900,
		BreakpointLG: 1200,
		BreakpointXL: 1536,
	}
}

// Threshold returns the pixel threshold for token. Unknown tokens resolve to
// the md threshold and report false.
func (b Breakpoints) Threshold(token Breakpoint) (int, bool) {
	if px, ok := b[token]; ok {
		return px, true
	}
	if px, ok := b[DefaultBreakpoint]; ok {
		return px, false
	}
	return DefaultBreakpoints()[DefaultBreakpoint], false
}

// CellMetric is the pixel size of one terminal cell. Layout math happens in
// pixels; the metric converts results into columns and rows.
type CellMetric struct {
	Width  int
	Height int
}

// DefaultCellMetric returns an 8x16 pixel cell.
func DefaultCellMetric() CellMetric {
	return CellMetric{Width: 8, Height: 16}
}

// IsZero reports whether the metric is unset.
func (c CellMetric) IsZero() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Columns converts a pixel extent into a column count, rounding to nearest.
// Non-positive extents occupy no columns.
func (c CellMetric) Columns(px int) int {
	if px <= 0 || c.Width <= 0 {
		return 0
	}
	return (px + c.Width/2) / c.Width
}

// Rows converts a pixel extent into a row count, rounding to nearest.
func (c CellMetric) Rows(px int) int {
	if px <= 0 || c.Height <= 0 {
		return 0
	}
	return (px + c.Height/2) / c.Height
}

// Column maps a pixel coordinate to the column containing it. Negative
// coordinates map to negative columns.
func (c CellMetric) Column(px float64) int {
	if c.Width <= 0 {
		return 0
	}
	return int(math.Floor(px / float64(c.Width)))
}

// Row maps a pixel coordinate to the row containing it.
func (c CellMetric) Row(px float64) int {
	if c.Height <= 0 {
		return 0
	}
	return int(math.Floor(px / float64(c.Height)))
}

// PixelWidth converts a column count to pixels.
func (c CellMetric) PixelWidth(cols int) int {
	return cols * c.Width
}

// PixelHeight converts a row count to pixels.
func (c CellMetric) PixelHeight(rows int) int {
	return rows * c.Height
}

// ColourSet is a semantic color set with base, on-base, muted, and contrast
// colors. All colors adapt to light and dark terminals.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Neutral   ColourSet
	Danger    ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// BorderVariant selects a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// ButtonVariant selects the visual treatment of a Button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantGhost
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is the explicit style input every component and layout reads.
// Themes are values: modification helpers return copies.
type Theme struct {
	Palette     Palette
	Borders     BorderSet
	Typography  TypographyScale
	Variants    *VariantRegistry
	SpacingUnit int
	Breakpoints Breakpoints
	Cell        CellMetric
}

// Normalize fills unset primitives with defaults so partially specified
// themes behave predictably.
func (t Theme) Normalize() Theme {
	if t.SpacingUnit <= 0 {
		t.SpacingUnit = DefaultSpacingUnit
	}
	if len(t.Breakpoints) == 0 {
		t.Breakpoints = DefaultBreakpoints()
	} else {
		merged := DefaultBreakpoints()
		for token, px := range t.Breakpoints {
			merged[token] = px
		}
		t.Breakpoints = merged
	}
	if t.Cell.IsZero() {
		t.Cell = DefaultCellMetric()
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerButtonVariants(t.Variants)
	}
	return t
}

// Gap converts spacing units into pixels.
func (t Theme) Gap(units int) int {
	unit := t.SpacingUnit
	if unit <= 0 {
		unit = DefaultSpacingUnit
	}
	return units * unit
}

// WithSpacingUnit returns a copy of the theme using unit pixels per gap unit.
func (t Theme) WithSpacingUnit(unit int) Theme {
	t.SpacingUnit = unit
	return t
}

// WithBreakpoints returns a copy of the theme with the given thresholds
// layered over the current table.
func (t Theme) WithBreakpoints(bp Breakpoints) Theme {
	merged := make(Breakpoints, len(t.Breakpoints)+len(bp))
	for token, px := range t.Breakpoints {
		merged[token] = px
	}
	for token, px := range bp {
		merged[token] = px
	}
	t.Breakpoints = merged
	return t
}

// WithCell returns a copy of the theme using the given cell metric.
func (t Theme) WithCell(cell CellMetric) Theme {
	t.Cell = cell
	return t
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)

	return Theme{
		Palette:     palette,
		Borders:     borders,
		Typography:  defaultTypography(palette),
		Variants:    variants,
		SpacingUnit: DefaultSpacingUnit,
		Breakpoints: DefaultBreakpoints(),
		Cell:        DefaultCellMetric(),
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		Foreground(PalettePrimary),
		PaddingX(2),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
		Foreground(PaletteSecondary),
		PaddingX(2),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Border(BorderVariantRounded),
		PaddingX(1),
	))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base),
		Body:     base,
		Emphasis: base.Italic(true),
		Muted:    base.Faint(true),
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// BorderForVariant returns the border that corresponds to the variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return lipgloss.Border{}
	}
}

// Background paints the slot's base colour behind the content.
func Background(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Background(slot(theme.Palette).Base)
	}
}

// Foreground sets the slot's on-base colour for the content.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(slot(theme.Palette).OnBase)
	}
}

// Accent sets the slot's base colour as the foreground.
func Accent(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(slot(theme.Palette).Base)
	}
}

// Border draws the theme border for variant.
func Border(variant BorderVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return style
		}
		return style.Border(BorderForVariant(theme, variant)).
			BorderForeground(theme.Palette.Neutral.Base)
	}
}

// PaddingX pads left and right by cells.
func PaddingX(cells int) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.PaddingLeft(cells).PaddingRight(cells)
	}
}

// Typography inherits the theme typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Inherit(TypographyStyle(theme, variant))
	}
}
