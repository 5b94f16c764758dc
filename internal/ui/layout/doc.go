// Package layout implements the page-layout toolkit: a tab switcher, a
// sidebar/main composer, and a scattered decorative canvas.
//
// Each layout is a plain stateful value. State changes happen synchronously
// through methods (Select, ToggleCollapse, SetViewportWidth, ClickElement)
// and are visible to the next render. The *Model types wrap a layout as a
// bubbletea model that maps keyboard, mouse, and resize messages onto those
// methods.
//
// Geometry is expressed in pixels. The Theme passed through a
// components.RenderContext converts pixels into terminal cells at render
// time.
package layout
