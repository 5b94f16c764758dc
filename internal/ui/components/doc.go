// Package components provides the theme-aware building blocks the layout
// toolkit renders with: text, buttons, cards, dividers, and stacks.
//
// # Theme
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme().WithSpacingUnit(4)
//	ctx := components.NewContext(theme)
//	output := components.Render(card, ctx)
//
// Besides colours and typography a Theme carries the two primitives layouts
// depend on: SpacingUnit (pixels per gap unit) and Breakpoints (named
// viewport thresholds in pixels). Cell converts pixel geometry into
// terminal columns and rows.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	text := NewText("Hello").WithAppliers(
//		Typography(TypographyVariantTitle),
//		Accent(PalettePrimary),
//	)
//
// Any ui.Renderable may be passed where content is expected. Components that
// also implement ContextualRenderable receive the active RenderContext.
package components
